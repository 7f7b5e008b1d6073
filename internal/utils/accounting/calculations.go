package accounting

import (
	"sort"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DebtBalanceDelta is the change a transaction applies to its linked debt:
// income adds the amount, expense subtracts it, transfer has no effect.
func DebtBalanceDelta(txnType domain.TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txnType {
	case domain.Income:
		return amount
	case domain.Expense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// DebtBalanceChanges nets the per-debt balance changes needed when a linked
// transaction goes from before to after. A nil before means the transaction is
// new; a nil after means it is being deleted. Zero entries are dropped.
func DebtBalanceChanges(before, after *domain.Transaction) map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal)
	if before != nil && before.DebtID != nil {
		changes[*before.DebtID] = changes[*before.DebtID].Sub(DebtBalanceDelta(before.Type, before.Amount))
	}
	if after != nil && after.DebtID != nil {
		changes[*after.DebtID] = changes[*after.DebtID].Add(DebtBalanceDelta(after.Type, after.Amount))
	}
	for id, delta := range changes {
		if delta.IsZero() {
			delete(changes, id)
		}
	}
	return changes
}

// ComputeDashboard folds the live assets and debts into the dashboard totals.
// Deleted rows are skipped even if the caller passes them in.
func ComputeDashboard(assets []domain.Asset, debts []domain.Debt) domain.Dashboard {
	totalAssets := decimal.Zero
	totalDebts := decimal.Zero
	groups := make(map[domain.AssetType]*domain.AssetBreakdownItem)

	for _, a := range assets {
		if a.IsDeleted {
			continue
		}
		totalAssets = totalAssets.Add(a.CurrentValue)
		item, ok := groups[a.Type]
		if !ok {
			item = &domain.AssetBreakdownItem{Type: a.Type, Value: decimal.Zero}
			groups[a.Type] = item
		}
		item.Value = item.Value.Add(a.CurrentValue)
		item.Count++
	}

	for _, d := range debts {
		if d.IsDeleted {
			continue
		}
		totalDebts = totalDebts.Add(d.CurrentBalance)
	}

	breakdown := make([]domain.AssetBreakdownItem, 0, len(groups))
	for _, item := range groups {
		item.Percentage = decimal.Zero
		if totalAssets.IsPositive() || totalAssets.IsNegative() {
			item.Percentage = item.Value.Div(totalAssets).Mul(hundred)
		}
		breakdown = append(breakdown, *item)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Value.Equal(breakdown[j].Value) {
			return breakdown[i].Value.GreaterThan(breakdown[j].Value)
		}
		return breakdown[i].Type < breakdown[j].Type
	})

	return domain.Dashboard{
		TotalAssets:           totalAssets,
		TotalDebts:            totalDebts,
		NetWorth:              totalAssets.Sub(totalDebts),
		NetWorthChange:        decimal.Zero,
		NetWorthChangePercent: decimal.Zero,
		AssetBreakdown:        breakdown,
		RecentTransactions:    []domain.Transaction{},
	}
}
