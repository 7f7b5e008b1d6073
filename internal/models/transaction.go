package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table, plus the joined
// asset and debt names returned by list queries.
type Transaction struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Date        string          `db:"date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Type        string          `db:"type"`
	AssetID     sql.NullString  `db:"asset_id"`
	DebtID      sql.NullString  `db:"debt_id"`
	IsDeleted   bool            `db:"is_deleted"`
	AuditFields

	AssetName sql.NullString `db:"asset_name"`
	DebtName  sql.NullString `db:"debt_name"`
}
