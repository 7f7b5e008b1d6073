package domain

import "github.com/shopspring/decimal"

// AssetBreakdownItem is the share of one asset type in total asset value.
type AssetBreakdownItem struct {
	Type       AssetType       `json:"type"`
	Value      decimal.Decimal `json:"value"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Dashboard is the net-worth summary recomputed on every read.
// NetWorthChange and NetWorthChangePercent stay zero: no historical baseline is kept.
type Dashboard struct {
	TotalAssets           decimal.Decimal      `json:"totalAssets"`
	TotalDebts            decimal.Decimal      `json:"totalDebts"`
	NetWorth              decimal.Decimal      `json:"netWorth"`
	NetWorthChange        decimal.Decimal      `json:"netWorthChange"`
	NetWorthChangePercent decimal.Decimal      `json:"netWorthChangePercent"`
	AssetBreakdown        []AssetBreakdownItem `json:"assetBreakdown"`
	RecentTransactions    []Transaction        `json:"recentTransactions"`
}
