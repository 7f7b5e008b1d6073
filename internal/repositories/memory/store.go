package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Options configures an in-memory store.
type Options struct {
	// SeedDemoData loads a small demo portfolio on Init.
	SeedDemoData bool
	// OwnerUserID owns the seeded records. Defaults to domain.DefaultUserID.
	OwnerUserID string
	Logger      *slog.Logger
}

// Store keeps every record in process memory behind one mutex. It enforces
// the same reference and balance rules as the SQL store so either can back the API.
type Store struct {
	opts Options

	mu           sync.RWMutex
	ready        bool
	assets       map[string]domain.Asset
	debts        map[string]domain.Debt
	transactions map[string]domain.Transaction
	profiles     map[string]domain.Profile
}

// NewStore returns an uninitialized store.
func NewStore(opts Options) *Store {
	if opts.OwnerUserID == "" {
		opts.OwnerUserID = domain.DefaultUserID
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{opts: opts}
}

// Init allocates the tables and, if configured, seeds demo data.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if s.assets == nil {
		s.assets = make(map[string]domain.Asset)
		s.debts = make(map[string]domain.Debt)
		s.transactions = make(map[string]domain.Transaction)
		s.profiles = make(map[string]domain.Profile)
		if s.opts.SeedDemoData {
			seedDemoData(s, s.opts.OwnerUserID, time.Now().UTC())
			s.opts.Logger.InfoContext(ctx, "Seeded demo data", slog.String("user_id", s.opts.OwnerUserID))
		}
	}
	s.ready = true
	s.opts.Logger.InfoContext(ctx, "Memory store ready")
	return nil
}

// Close marks the store unusable. Data is kept so a later Init resumes it.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = false
	return nil
}

// Repositories wires every repository to this store.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AssetRepo:       &AssetRepository{store: s},
		DebtRepo:        &DebtRepository{store: s},
		TransactionRepo: &TransactionRepository{store: s},
		ProfileRepo:     &ProfileRepository{store: s},
	}
}

func (s *Store) checkReady() error {
	if !s.ready {
		return apperrors.ErrNotReady
	}
	return nil
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func seedDemoData(s *Store, userID string, now time.Time) {
	audit := domain.AuditFields{CreatedAt: now, UpdatedAt: now}
	rate := decimal.RequireFromString("4.5")

	s.assets["asset_1"] = domain.Asset{ID: "asset_1", UserID: userID, Name: "Savings Account", Type: domain.AssetBankAccount, CurrentValue: decimal.RequireFromString("15000"), AuditFields: audit}
	s.assets["asset_2"] = domain.Asset{ID: "asset_2", UserID: userID, Name: "Investment Portfolio", Type: domain.AssetInvestment, CurrentValue: decimal.RequireFromString("25000"), AuditFields: audit}

	s.debts["debt_1"] = domain.Debt{ID: "debt_1", UserID: userID, Name: "Car Loan", Type: domain.DebtCarLoan, CurrentBalance: decimal.RequireFromString("12500"), InterestRate: &rate, AuditFields: audit}
	s.debts["debt_2"] = domain.Debt{ID: "debt_2", UserID: userID, Name: "Student Loan", Type: domain.DebtPersonalLoan, CurrentBalance: decimal.RequireFromString("30000"), AuditFields: audit}

	assetID := "asset_1"
	s.transactions["transaction_1"] = domain.Transaction{ID: "transaction_1", UserID: userID, Date: now, Description: "Salary", Amount: decimal.RequireFromString("5000"), Type: domain.Income, AssetID: cloneString(&assetID), AuditFields: audit}
	s.transactions["transaction_2"] = domain.Transaction{ID: "transaction_2", UserID: userID, Date: now.Add(-24 * time.Hour), Description: "Groceries", Amount: decimal.RequireFromString("150"), Type: domain.Expense, AssetID: cloneString(&assetID), AuditFields: audit}
}
