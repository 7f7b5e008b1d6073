package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/accounting"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
	"github.com/SscSPs/networth_tracker/internal/utils/pagination"
)

const transactionColumns = "id, user_id, date, description, amount, type, asset_id, debt_id, is_deleted, created_at, updated_at"

const transactionJoinedSelect = `
	SELECT t.id, t.user_id, t.date, t.description, t.amount, t.type, t.asset_id, t.debt_id,
	       t.is_deleted, t.created_at, t.updated_at, a.name, d.name
	FROM transactions t
	LEFT JOIN assets a ON t.asset_id = a.id
	LEFT JOIN debts d ON t.debt_id = d.id`

type SQLTransactionRepository struct {
	BaseRepository
	debtRepo *SQLDebtRepository
}

func newSQLTransactionRepository(store *Store, debtRepo *SQLDebtRepository) *SQLTransactionRepository {
	return &SQLTransactionRepository{
		BaseRepository: BaseRepository{store: store},
		debtRepo:       debtRepo,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLTransactionRepository)(nil)

func scanTransaction(row interface{ Scan(...any) error }, withNames bool) (domain.Transaction, error) {
	var m models.Transaction
	dest := []any{
		&m.ID,
		&m.UserID,
		&m.Date,
		&m.Description,
		&m.Amount,
		&m.Type,
		&m.AssetID,
		&m.DebtID,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &m.AssetName, &m.DebtName)
	}
	if err := row.Scan(dest...); err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m)
}

// ListTransactions retrieves live transactions, most recent business date first,
// using keyset pagination on (date, created_at, id).
func (r *SQLTransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	db, err := r.DB()
	if err != nil {
		return nil, nil, err
	}

	query := transactionJoinedSelect + `
	WHERE t.user_id = ? AND t.is_deleted = 0`
	args := []any{userID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token", err)
		}
		query += `
	AND (t.date < ? OR (t.date = ? AND (t.created_at < ? OR (t.created_at = ? AND t.id < ?))))`
		d := domain.FormatTimestamp(cursor.Date)
		c := domain.FormatTimestamp(cursor.CreatedAt)
		args = append(args, d, d, c, c, cursor.ID)
	}

	query += `
	ORDER BY t.date DESC, t.created_at DESC, t.id DESC`
	if limit > 0 {
		// One extra row tells us whether another page exists.
		query += `
	LIMIT ?`
		args = append(args, limit+1)
	}

	rows, err := db.QueryContext(ctx, r.Rebind(query), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows, true)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.ID})
		newNextToken = &token
	}
	return txns, newNextToken, nil
}

// FindTransactionByID retrieves a transaction whether or not it is soft-deleted.
func (r *SQLTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	db, err := r.DB()
	if err != nil {
		return nil, err
	}

	query := r.Rebind(transactionJoinedSelect + `
	WHERE t.id = ? AND t.user_id = ?`)
	txn, err := scanTransaction(db.QueryRowContext(ctx, query, transactionID, userID), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// findTransactionForUpdate loads and locks a transaction row inside tx.
func (r *SQLTransactionRepository) findTransactionForUpdate(ctx context.Context, tx *sql.Tx, userID string, transactionID string) (*domain.Transaction, error) {
	query := r.Rebind(`SELECT `+transactionColumns+` FROM transactions WHERE id = ? AND user_id = ?`) + r.store.dialect.ForUpdate()
	txn, err := scanTransaction(tx.QueryRowContext(ctx, query, transactionID, userID), false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID)
		}
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// SaveTransaction inserts a transaction and applies its debt delta in one DB transaction.
// A link to a missing asset or debt fails the insert and nothing is committed.
func (r *SQLTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	query := r.Rebind(`
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = tx.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Date,
		m.Description,
		m.Amount,
		m.Type,
		m.AssetID,
		m.DebtID,
		boolToInt(m.IsDeleted),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, classifyError(err))
	}

	if !txn.IsDeleted {
		changes := accounting.DebtBalanceChanges(nil, &txn)
		if err := r.debtRepo.UpdateDebtBalancesInTx(ctx, tx, txn.UserID, changes, txn.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction writes the supplied fields and moves debt balances by the
// difference between the old and new effect of the transaction.
func (r *SQLTransactionRepository) UpdateTransaction(ctx context.Context, userID string, transactionID string, patch domain.TransactionPatch, now time.Time) error {
	if patch.IsEmpty() {
		_, err := r.DB()
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	before, err := r.findTransactionForUpdate(ctx, tx, userID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	after := patch.Apply(*before)

	var fields []string
	var args []any
	if patch.Date != nil {
		fields = append(fields, "date = ?")
		args = append(args, domain.FormatTimestamp(after.Date))
	}
	if patch.Description != nil {
		fields = append(fields, "description = ?")
		args = append(args, after.Description)
	}
	if patch.Amount != nil {
		fields = append(fields, "amount = ?")
		args = append(args, after.Amount)
	}
	if patch.Type != nil {
		fields = append(fields, "type = ?")
		args = append(args, string(after.Type))
	}
	if patch.AssetID != nil {
		fields = append(fields, "asset_id = ?")
		args = append(args, mapping.ToNullString(after.AssetID))
	}
	if patch.DebtID != nil {
		fields = append(fields, "debt_id = ?")
		args = append(args, mapping.ToNullString(after.DebtID))
	}
	fields = append(fields, "updated_at = ?")
	args = append(args, domain.FormatTimestamp(now), transactionID, userID)

	query := r.Rebind("UPDATE transactions SET " + strings.Join(fields, ", ") + " WHERE id = ? AND user_id = ?")
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transactionID, classifyError(err))
	}

	// A deleted transaction has already had its effect reversed.
	if !before.IsDeleted {
		changes := accounting.DebtBalanceChanges(before, &after)
		if err := r.debtRepo.UpdateDebtBalancesInTx(ctx, tx, userID, changes, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction marks a transaction as deleted and reverses its debt delta.
func (r *SQLTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	before, err := r.findTransactionForUpdate(ctx, tx, userID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if before.IsDeleted {
		return nil
	}

	query := r.Rebind(`UPDATE transactions SET is_deleted = 1, updated_at = ? WHERE id = ? AND user_id = ?`)
	if _, err := tx.ExecContext(ctx, query, domain.FormatTimestamp(now), transactionID, userID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, classifyError(err))
	}

	changes := accounting.DebtBalanceChanges(before, nil)
	if err := r.debtRepo.UpdateDebtBalancesInTx(ctx, tx, userID, changes, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
