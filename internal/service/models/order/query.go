package order

import "github.com/shopspring/decimal"

// QueryOrdersModel represents filter parameters for querying orders
type QueryOrdersModel struct {
	Ids            []int64          `json:"ids,omitempty"`
	CustomerIds    []int64          `json:"customerIds,omitempty"`
	MinTotalAmount *decimal.Decimal `json:"minTotalAmount,omitempty"`
	Limit          int              `json:"limit,omitempty"`
	Offset         int              `json:"offset,omitempty"`
}
