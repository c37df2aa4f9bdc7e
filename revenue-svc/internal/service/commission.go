package service

import "github.com/shopspring/decimal"

// CommissionRate is the platform's cut of every completed order.
var CommissionRate = decimal.RequireFromString("0.05")

// Commission rounds half to even at two decimals.
func Commission(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(CommissionRate).RoundBank(2)
}

// NetRevenue is what the store keeps after commission.
func NetRevenue(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Sub(CommissionRate)).RoundBank(2)
}
