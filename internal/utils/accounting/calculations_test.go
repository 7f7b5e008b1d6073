package accounting

import (
	"testing"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDebtBalanceDelta(t *testing.T) {
	tests := []struct {
		name    string
		txnType domain.TransactionType
		amount  decimal.Decimal
		want    decimal.Decimal
	}{
		{name: "income adds", txnType: domain.Income, amount: dec("500"), want: dec("500")},
		{name: "expense subtracts", txnType: domain.Expense, amount: dec("500"), want: dec("-500")},
		{name: "transfer has no effect", txnType: domain.Transfer, amount: dec("500"), want: decimal.Zero},
		{name: "unknown type has no effect", txnType: domain.TransactionType("refund"), amount: dec("1"), want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DebtBalanceDelta(tt.txnType, tt.amount)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestDebtBalanceDelta_SequenceSum(t *testing.T) {
	// balance == initial + sum(delta_i) for any sequence of linked transactions
	initial := dec("12500")
	seq := []struct {
		t domain.TransactionType
		a string
	}{
		{domain.Expense, "500"},
		{domain.Income, "120.25"},
		{domain.Transfer, "999"},
		{domain.Expense, "0.75"},
	}

	balance := initial
	for _, s := range seq {
		balance = balance.Add(DebtBalanceDelta(s.t, dec(s.a)))
	}
	assert.True(t, dec("12119.50").Equal(balance), "got %s", balance)
}

func TestDebtBalanceChanges(t *testing.T) {
	debtA := "debt_a"
	debtB := "debt_b"

	t.Run("create", func(t *testing.T) {
		changes := DebtBalanceChanges(nil, &domain.Transaction{DebtID: &debtA, Type: domain.Expense, Amount: dec("500")})
		require.Len(t, changes, 1)
		assert.True(t, dec("-500").Equal(changes[debtA]))
	})

	t.Run("delete reverses", func(t *testing.T) {
		changes := DebtBalanceChanges(&domain.Transaction{DebtID: &debtA, Type: domain.Expense, Amount: dec("500")}, nil)
		require.Len(t, changes, 1)
		assert.True(t, dec("500").Equal(changes[debtA]))
	})

	t.Run("amount edit on same debt is netted", func(t *testing.T) {
		before := &domain.Transaction{DebtID: &debtA, Type: domain.Expense, Amount: dec("500")}
		after := &domain.Transaction{DebtID: &debtA, Type: domain.Expense, Amount: dec("300")}
		changes := DebtBalanceChanges(before, after)
		require.Len(t, changes, 1)
		assert.True(t, dec("200").Equal(changes[debtA]))
	})

	t.Run("moving to another debt", func(t *testing.T) {
		before := &domain.Transaction{DebtID: &debtA, Type: domain.Expense, Amount: dec("500")}
		after := &domain.Transaction{DebtID: &debtB, Type: domain.Income, Amount: dec("50")}
		changes := DebtBalanceChanges(before, after)
		require.Len(t, changes, 2)
		assert.True(t, dec("500").Equal(changes[debtA]))
		assert.True(t, dec("50").Equal(changes[debtB]))
	})

	t.Run("unchanged link yields nothing", func(t *testing.T) {
		txn := &domain.Transaction{DebtID: &debtA, Type: domain.Expense, Amount: dec("500")}
		assert.Empty(t, DebtBalanceChanges(txn, txn))
	})

	t.Run("unlinked transaction", func(t *testing.T) {
		assert.Empty(t, DebtBalanceChanges(nil, &domain.Transaction{Type: domain.Income, Amount: dec("5")}))
	})
}

func TestComputeDashboard(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a1", Type: domain.AssetBankAccount, CurrentValue: dec("15000")},
		{ID: "a2", Type: domain.AssetInvestment, CurrentValue: dec("25000")},
		{ID: "a3", Type: domain.AssetBankAccount, CurrentValue: dec("5000")},
		{ID: "a4", Type: domain.AssetCrypto, CurrentValue: dec("1000"), IsDeleted: true},
	}
	debts := []domain.Debt{
		{ID: "d1", CurrentBalance: dec("12500")},
		{ID: "d2", CurrentBalance: dec("30000")},
		{ID: "d3", CurrentBalance: dec("99999"), IsDeleted: true},
	}

	d := ComputeDashboard(assets, debts)

	assert.True(t, dec("45000").Equal(d.TotalAssets))
	assert.True(t, dec("42500").Equal(d.TotalDebts))
	assert.True(t, dec("2500").Equal(d.NetWorth))
	assert.True(t, d.NetWorth.Equal(d.TotalAssets.Sub(d.TotalDebts)))
	assert.True(t, d.NetWorthChange.IsZero())
	assert.True(t, d.NetWorthChangePercent.IsZero())

	require.Len(t, d.AssetBreakdown, 2)
	assert.Equal(t, domain.AssetInvestment, d.AssetBreakdown[0].Type)
	assert.Equal(t, 1, d.AssetBreakdown[0].Count)
	assert.Equal(t, domain.AssetBankAccount, d.AssetBreakdown[1].Type)
	assert.Equal(t, 2, d.AssetBreakdown[1].Count)
	assert.True(t, dec("20000").Equal(d.AssetBreakdown[1].Value))

	sum := decimal.Zero
	for _, item := range d.AssetBreakdown {
		sum = sum.Add(item.Percentage)
	}
	assert.True(t, sum.Sub(dec("100")).Abs().LessThan(dec("0.000001")), "percentages sum to %s", sum)
}

func TestComputeDashboard_NoAssets(t *testing.T) {
	d := ComputeDashboard(nil, []domain.Debt{{CurrentBalance: dec("100")}})

	assert.True(t, d.TotalAssets.IsZero())
	assert.True(t, dec("-100").Equal(d.NetWorth))
	assert.Empty(t, d.AssetBreakdown)
	assert.NotNil(t, d.RecentTransactions)
}

func TestComputeDashboard_ZeroValuedAssets(t *testing.T) {
	d := ComputeDashboard([]domain.Asset{
		{Type: domain.AssetCash, CurrentValue: decimal.Zero},
		{Type: domain.AssetVehicle, CurrentValue: decimal.Zero},
	}, nil)

	require.Len(t, d.AssetBreakdown, 2)
	for _, item := range d.AssetBreakdown {
		assert.True(t, item.Percentage.IsZero(), "percentage must be zero when total assets is zero")
	}
	// ties on value are ordered by type
	assert.Equal(t, domain.AssetCash, d.AssetBreakdown[0].Type)
}
