package main

import (
	"github.com/commercelabs/order/internal/app"
	"github.com/commercelabs/order/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
