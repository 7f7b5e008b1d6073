package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NormalizesDateToUTC() {
	ctx := context.Background()
	debtID := "debt_1"
	local := time.Date(2024, 3, 1, 23, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	input := domain.CreateTransactionInput{
		Date:        local,
		Description: "Loan payment",
		Amount:      decimal.RequireFromString("500"),
		Type:        domain.Expense,
		DebtID:      &debtID,
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return strings.HasPrefix(txn.ID, "transaction_") &&
			txn.Date.Location() == time.UTC &&
			txn.Date.Equal(local) &&
			txn.DebtID != nil && *txn.DebtID == debtID &&
			txn.AssetID == nil
	})).Return(nil).Once()

	id, err := suite.service.CreateTransaction(ctx, testUserID, input)

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(id, "transaction_"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ValidationError() {
	now := time.Now()
	tests := []struct {
		name  string
		input domain.CreateTransactionInput
	}{
		{name: "missing date", input: domain.CreateTransactionInput{Description: "x", Amount: decimal.NewFromInt(1), Type: domain.Income}},
		{name: "missing description", input: domain.CreateTransactionInput{Date: now, Amount: decimal.NewFromInt(1), Type: domain.Income}},
		{name: "zero amount", input: domain.CreateTransactionInput{Date: now, Description: "x", Type: domain.Income}},
		{name: "negative amount", input: domain.CreateTransactionInput{Date: now, Description: "x", Amount: decimal.NewFromInt(-3), Type: domain.Income}},
		{name: "unknown type", input: domain.CreateTransactionInput{Date: now, Description: "x", Amount: decimal.NewFromInt(1), Type: "refund"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateTransaction(context.Background(), testUserID, tt.input)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingDebtIsConstraint() {
	ctx := context.Background()
	debtID := "debt_gone"
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(apperrors.ErrConstraint).Once()

	_, err := suite.service.CreateTransaction(ctx, testUserID, domain.CreateTransactionInput{
		Date: time.Now(), Description: "x", Amount: decimal.NewFromInt(10), Type: domain.Expense, DebtID: &debtID,
	})

	suite.ErrorIs(err, apperrors.ErrConstraint)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PageSize() {
	ctx := context.Background()
	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{name: "default", requested: 0, expected: services.DefaultTransactionPageSize},
		{name: "explicit", requested: 10, expected: 10},
		{name: "capped", requested: 10000, expected: services.MaxTransactionPageSize},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockRepo.On("ListTransactions", ctx, testUserID, tt.expected, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()

			txns, token, err := suite.service.ListTransactions(ctx, testUserID, tt.requested, nil)

			suite.Require().NoError(err)
			suite.Empty(txns)
			suite.Nil(token)
		})
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListAllTransactions_NoLimit() {
	ctx := context.Background()
	all := []domain.Transaction{{ID: "transaction_1"}, {ID: "transaction_2"}}
	suite.mockRepo.On("ListTransactions", ctx, testUserID, 0, (*string)(nil)).Return(all, nil, nil).Once()

	got, err := suite.service.ListAllTransactions(ctx, testUserID)

	suite.Require().NoError(err)
	suite.Equal(all, got)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RejectsNonPositiveAmount() {
	zero := decimal.Zero

	err := suite.service.UpdateTransaction(context.Background(), testUserID, "transaction_1", domain.TransactionPatch{Amount: &zero})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteTransaction", ctx, testUserID, "transaction_1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteTransaction(ctx, testUserID, "transaction_1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
