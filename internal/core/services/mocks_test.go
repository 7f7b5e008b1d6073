package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, userID string, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, userID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, userID string, assetID string, patch domain.AssetPatch, now time.Time) error {
	return m.Called(ctx, userID, assetID, patch, now).Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, userID string, assetID string, now time.Time) error {
	return m.Called(ctx, userID, assetID, now).Error(0)
}

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	args := m.Called(ctx, userID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	return m.Called(ctx, debt).Error(0)
}

func (m *MockDebtRepository) UpdateDebt(ctx context.Context, userID string, debtID string, patch domain.DebtPatch, now time.Time) error {
	return m.Called(ctx, userID, debtID, patch, now).Error(0)
}

func (m *MockDebtRepository) DeleteDebt(ctx context.Context, userID string, debtID string, now time.Time) error {
	return m.Called(ctx, userID, debtID, now).Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, userID string, transactionID string, patch domain.TransactionPatch, now time.Time) error {
	return m.Called(ctx, userID, transactionID, patch, now).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string, now time.Time) error {
	return m.Called(ctx, userID, transactionID, now).Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
