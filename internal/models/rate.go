package models

import "github.com/shopspring/decimal"

// RateTable maps target currency codes to the price of one unit of the base
// currency, as returned by the external feed for a single base.
type RateTable map[string]decimal.Decimal
