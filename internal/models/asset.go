package models

import (
	"github.com/shopspring/decimal"
)

// Asset is the row shape of the assets table.
type Asset struct {
	ID           string          `db:"id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Type         string          `db:"type"`
	CurrentValue decimal.Decimal `db:"current_value"`
	IsDeleted    bool            `db:"is_deleted"`
	AuditFields
}
