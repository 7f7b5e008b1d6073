package dto

import (
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetBreakdownResponse is one slice of the asset-type breakdown.
type AssetBreakdownResponse struct {
	Type       string          `json:"type"`
	Value      decimal.Decimal `json:"value"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DashboardResponse is the net-worth summary.
type DashboardResponse struct {
	TotalAssets           decimal.Decimal          `json:"totalAssets"`
	TotalDebts            decimal.Decimal          `json:"totalDebts"`
	NetWorth              decimal.Decimal          `json:"netWorth"`
	NetWorthChange        decimal.Decimal          `json:"netWorthChange"`
	NetWorthChangePercent decimal.Decimal          `json:"netWorthChangePercent"`
	AssetBreakdown        []AssetBreakdownResponse `json:"assetBreakdown"`
	RecentTransactions    []TransactionResponse    `json:"recentTransactions"`
}

// ToDashboardResponse converts the domain dashboard.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	breakdown := make([]AssetBreakdownResponse, len(d.AssetBreakdown))
	for i, item := range d.AssetBreakdown {
		breakdown[i] = AssetBreakdownResponse{
			Type:       string(item.Type),
			Value:      item.Value,
			Count:      item.Count,
			Percentage: item.Percentage.Round(2),
		}
	}
	return DashboardResponse{
		TotalAssets:           d.TotalAssets,
		TotalDebts:            d.TotalDebts,
		NetWorth:              d.NetWorth,
		NetWorthChange:        d.NetWorthChange,
		NetWorthChangePercent: d.NetWorthChangePercent,
		AssetBreakdown:        breakdown,
		RecentTransactions:    ToTransactionResponses(d.RecentTransactions),
	}
}
