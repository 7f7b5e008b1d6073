package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), day)

	ts, err := ParseDate("2024-03-01T23:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
	assert.Equal(t, time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC), ts)

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestCreateTransactionRequest_EmptyLinksDropped(t *testing.T) {
	empty := ""
	debt := "debt_1"
	req := CreateTransactionRequest{
		Date:        "2024-03-01",
		Description: "Payment",
		Amount:      decimal.NewFromInt(100),
		Type:        "expense",
		AssetID:     &empty,
		DebtID:      &debt,
	}

	in, err := req.ToInput()

	require.NoError(t, err)
	assert.Nil(t, in.AssetID)
	require.NotNil(t, in.DebtID)
	assert.Equal(t, debt, *in.DebtID)
	assert.Equal(t, domain.Expense, in.Type)
}

func TestUpdateTransactionRequest_EmptyLinkKeptForUnlinking(t *testing.T) {
	empty := ""
	patch, err := UpdateTransactionRequest{DebtID: &empty}.ToPatch()

	require.NoError(t, err)
	require.NotNil(t, patch.DebtID)
	assert.Nil(t, patch.Apply(domain.Transaction{DebtID: new(string)}).DebtID)
}

func TestUpdateDebtRequest_ClearInterestRate(t *testing.T) {
	patch := UpdateDebtRequest{ClearInterestRate: true}.ToPatch()

	assert.True(t, patch.ClearInterestRate)
	assert.Nil(t, patch.InterestRate)
	assert.False(t, patch.IsEmpty())
}

func TestToProfileResponse_OmitsZeroUpdatedAt(t *testing.T) {
	assert.Nil(t, ToProfileResponse(&domain.Profile{ID: "owner"}).UpdatedAt)

	now := time.Now().UTC()
	res := ToProfileResponse(&domain.Profile{ID: "owner", UpdatedAt: now})
	require.NotNil(t, res.UpdatedAt)
	assert.Equal(t, now, *res.UpdatedAt)
}
