package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDashboard(t *testing.T) {
	ctx := context.Background()
	assetRepo := new(MockAssetRepository)
	debtRepo := new(MockDebtRepository)
	txnRepo := new(MockTransactionRepository)

	assetRepo.On("ListAssets", ctx, testUserID).Return([]domain.Asset{
		{ID: "asset_1", Type: domain.AssetBankAccount, CurrentValue: decimal.RequireFromString("15000")},
		{ID: "asset_2", Type: domain.AssetInvestment, CurrentValue: decimal.RequireFromString("25000")},
	}, nil)
	debtRepo.On("ListDebts", ctx, testUserID).Return([]domain.Debt{
		{ID: "debt_1", CurrentBalance: decimal.RequireFromString("12500")},
		{ID: "debt_2", CurrentBalance: decimal.RequireFromString("30000")},
	}, nil)
	recent := []domain.Transaction{{ID: "transaction_1"}}
	txnRepo.On("ListTransactions", ctx, testUserID, services.RecentTransactionsLimit, (*string)(nil)).Return(recent, nil, nil)

	svc := services.NewDashboardService(assetRepo, debtRepo, txnRepo)
	dashboard, err := svc.ComputeDashboard(ctx, testUserID)

	require.NoError(t, err)
	assert.True(t, dashboard.TotalAssets.Equal(decimal.NewFromInt(40000)))
	assert.True(t, dashboard.TotalDebts.Equal(decimal.NewFromInt(42500)))
	assert.True(t, dashboard.NetWorth.Equal(decimal.NewFromInt(-2500)))
	assert.True(t, dashboard.NetWorthChange.IsZero())
	require.Len(t, dashboard.AssetBreakdown, 2)
	assert.Equal(t, domain.AssetInvestment, dashboard.AssetBreakdown[0].Type)
	assert.True(t, dashboard.AssetBreakdown[0].Percentage.Equal(decimal.RequireFromString("62.5")))
	assert.Equal(t, recent, dashboard.RecentTransactions)
}

func TestComputeDashboard_EmptyStore(t *testing.T) {
	ctx := context.Background()
	assetRepo := new(MockAssetRepository)
	debtRepo := new(MockDebtRepository)
	txnRepo := new(MockTransactionRepository)
	assetRepo.On("ListAssets", ctx, testUserID).Return([]domain.Asset{}, nil)
	debtRepo.On("ListDebts", ctx, testUserID).Return([]domain.Debt{}, nil)
	txnRepo.On("ListTransactions", ctx, testUserID, services.RecentTransactionsLimit, (*string)(nil)).Return(nil, nil, nil)

	dashboard, err := services.NewDashboardService(assetRepo, debtRepo, txnRepo).ComputeDashboard(ctx, testUserID)

	require.NoError(t, err)
	assert.True(t, dashboard.NetWorth.IsZero())
	assert.Empty(t, dashboard.AssetBreakdown)
	assert.NotNil(t, dashboard.RecentTransactions)
	assert.Empty(t, dashboard.RecentTransactions)
}

func TestComputeDashboard_ReadFailure(t *testing.T) {
	ctx := context.Background()
	assetRepo := new(MockAssetRepository)
	debtRepo := new(MockDebtRepository)
	txnRepo := new(MockTransactionRepository)
	boom := errors.New("boom")
	assetRepo.On("ListAssets", ctx, testUserID).Return([]domain.Asset{}, nil)
	debtRepo.On("ListDebts", ctx, testUserID).Return(nil, boom)

	dashboard, err := services.NewDashboardService(assetRepo, debtRepo, txnRepo).ComputeDashboard(ctx, testUserID)

	assert.Nil(t, dashboard)
	assert.ErrorIs(t, err, boom)
	txnRepo.AssertNotCalled(t, "ListTransactions", ctx, testUserID, services.RecentTransactionsLimit, (*string)(nil))
}
