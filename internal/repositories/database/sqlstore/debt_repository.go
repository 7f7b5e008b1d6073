package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/models"
	"github.com/SscSPs/networth_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const debtColumns = "id, user_id, name, type, current_balance, interest_rate, is_deleted, created_at, updated_at"

type SQLDebtRepository struct {
	BaseRepository
}

func newSQLDebtRepository(store *Store) *SQLDebtRepository {
	return &SQLDebtRepository{BaseRepository: BaseRepository{store: store}}
}

var _ portsrepo.DebtRepositoryFacade = (*SQLDebtRepository)(nil)

func scanDebt(row interface{ Scan(...any) error }) (domain.Debt, error) {
	var m models.Debt
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Type,
		&m.CurrentBalance,
		&m.InterestRate,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return domain.Debt{}, err
	}
	return mapping.ToDomainDebt(m)
}

// ListDebts retrieves the live debts of a user, newest first.
func (r *SQLDebtRepository) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	db, err := r.DB()
	if err != nil {
		return nil, err
	}

	query := r.Rebind(`
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = ? AND is_deleted = 0
		ORDER BY created_at DESC, id DESC`)

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	debts := []domain.Debt{}
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, debt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}
	return debts, nil
}

// FindDebtByID retrieves a debt whether or not it is soft-deleted.
func (r *SQLDebtRepository) FindDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	db, err := r.DB()
	if err != nil {
		return nil, err
	}

	query := r.Rebind(`SELECT ` + debtColumns + ` FROM debts WHERE id = ? AND user_id = ?`)
	debt, err := scanDebt(db.QueryRowContext(ctx, query, debtID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("debt " + debtID)
		}
		return nil, fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}
	return &debt, nil
}

// SaveDebt inserts a new debt.
func (r *SQLDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	db, err := r.DB()
	if err != nil {
		return err
	}

	m := mapping.ToModelDebt(debt)
	query := r.Rebind(`
		INSERT INTO debts (` + debtColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err = db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Name,
		m.Type,
		m.CurrentBalance,
		m.InterestRate,
		boolToInt(m.IsDeleted),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt %s: %w", debt.ID, classifyError(err))
	}
	return nil
}

// UpdateDebt writes the supplied fields and updated_at.
func (r *SQLDebtRepository) UpdateDebt(ctx context.Context, userID string, debtID string, patch domain.DebtPatch, now time.Time) error {
	db, err := r.DB()
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	var fields []string
	var args []any
	if patch.Name != nil {
		fields = append(fields, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Type != nil {
		fields = append(fields, "type = ?")
		args = append(args, string(*patch.Type))
	}
	if patch.CurrentBalance != nil {
		fields = append(fields, "current_balance = ?")
		args = append(args, *patch.CurrentBalance)
	}
	if patch.InterestRate != nil {
		fields = append(fields, "interest_rate = ?")
		args = append(args, *patch.InterestRate)
	}
	if patch.ClearInterestRate {
		fields = append(fields, "interest_rate = NULL")
	}
	fields = append(fields, "updated_at = ?")
	args = append(args, domain.FormatTimestamp(now), debtID, userID)

	query := r.Rebind("UPDATE debts SET " + strings.Join(fields, ", ") + " WHERE id = ? AND user_id = ?")
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update debt %s: %w", debtID, classifyError(err))
	}
	return nil
}

// DeleteDebt marks a debt as deleted. Linked transactions keep their reference.
func (r *SQLDebtRepository) DeleteDebt(ctx context.Context, userID string, debtID string, now time.Time) error {
	db, err := r.DB()
	if err != nil {
		return err
	}

	query := r.Rebind(`
		UPDATE debts SET is_deleted = 1, updated_at = ?
		WHERE id = ? AND user_id = ? AND is_deleted = 0`)
	if _, err := db.ExecContext(ctx, query, domain.FormatTimestamp(now), debtID, userID); err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, classifyError(err))
	}
	return nil
}

// UpdateDebtBalancesInTx adds each delta to the matching debt balance within tx.
// Every debt must exist; a missing row aborts with ErrNotFound so the caller rolls back.
func (r *SQLDebtRepository) UpdateDebtBalancesInTx(ctx context.Context, tx *sql.Tx, userID string, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	// Fixed order keeps lock acquisition consistent across concurrent writers.
	debtIDs := make([]string, 0, len(balanceChanges))
	for debtID, delta := range balanceChanges {
		if !delta.IsZero() {
			debtIDs = append(debtIDs, debtID)
		}
	}
	sort.Strings(debtIDs)

	query := r.Rebind(`
		UPDATE debts
		SET current_balance = current_balance + ?, updated_at = ?
		WHERE id = ? AND user_id = ?`)

	for _, debtID := range debtIDs {
		res, err := tx.ExecContext(ctx, query, balanceChanges[debtID], domain.FormatTimestamp(now), debtID, userID)
		if err != nil {
			return fmt.Errorf("failed to update balance for debt %s: %w", debtID, classifyError(err))
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected for debt %s: %w", debtID, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: debt %s not found during balance update", apperrors.ErrNotFound, debtID)
		}
		slog.DebugContext(ctx, "Debt balance adjusted", "debt_id", debtID, "delta", balanceChanges[debtID].String())
	}
	return nil
}
