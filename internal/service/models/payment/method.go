package payment

import (
	"database/sql/driver"
	"errors"
)

type Method string

const (
	MethodCard Method = "CARD"
	MethodCash Method = "CASH"
)

var ErrInvalidMethod = errors.New("invalid payment method")

func (m Method) String() string {
	return string(m)
}

func (m Method) Value() (driver.Value, error) {
	return m.String(), nil
}

func ParseMethod(s string) (Method, error) {
	switch s {
	case MethodCard.String():
		return MethodCard, nil
	case MethodCash.String():
		return MethodCash, nil
	default:
		return "", ErrInvalidMethod
	}
}
