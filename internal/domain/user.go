package domain

import "github.com/shopspring/decimal"

type User struct {
	Username      string          `json:"username"`
	SolBalance    decimal.Decimal `json:"solBalance"`
	CgxmasBalance decimal.Decimal `json:"cgxmasBalance"`
}
