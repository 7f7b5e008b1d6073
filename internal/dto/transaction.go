package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day form accepted alongside RFC 3339 timestamps.
const DateLayout = "2006-01-02"

// ParseDate accepts either a full RFC 3339 timestamp or a bare calendar day (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be RFC 3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required,oneof=income expense transfer"`
	AssetID     *string         `json:"assetId"`
	DebtID      *string         `json:"debtId"`
}

// ToInput converts the request into the domain input. Empty link ids mean "no link".
func (r CreateTransactionRequest) ToInput() (domain.CreateTransactionInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.CreateTransactionInput{}, err
	}
	return domain.CreateTransactionInput{
		Date:        date,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        domain.TransactionType(r.Type),
		AssetID:     nonEmpty(r.AssetID),
		DebtID:      nonEmpty(r.DebtID),
	}, nil
}

// UpdateTransactionRequest carries the transaction fields to change.
// An empty assetId or debtId removes the link.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date"`
	Description *string          `json:"description" binding:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" binding:"omitempty,oneof=income expense transfer"`
	AssetID     *string          `json:"assetId"`
	DebtID      *string          `json:"debtId"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTransactionRequest) ToPatch() (domain.TransactionPatch, error) {
	patch := domain.TransactionPatch{
		Description: r.Description,
		Amount:      r.Amount,
		AssetID:     r.AssetID,
		DebtID:      r.DebtID,
	}
	if r.Date != nil {
		date, err := ParseDate(*r.Date)
		if err != nil {
			return domain.TransactionPatch{}, err
		}
		patch.Date = &date
	}
	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		patch.Type = &t
	}
	return patch, nil
}

// ListTransactionsParams holds the query parameters of the transaction list.
type ListTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	AssetID     *string         `json:"assetId"`
	DebtID      *string         `json:"debtId"`
	AssetName   *string         `json:"assetName,omitempty"`
	DebtName    *string         `json:"debtName,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		AssetID:     t.AssetID,
		DebtID:      t.DebtID,
		AssetName:   t.AssetName,
		DebtName:    t.DebtName,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
