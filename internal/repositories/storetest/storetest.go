// Package storetest holds the behaviour every storage backend must share.
// Backends run it from their own tests with a constructor for a fresh store.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Backend is the lifecycle a store under test exposes.
type Backend interface {
	Init(ctx context.Context) error
	Repositories() portsrepo.RepositoryProvider
	Close() error
}

const owner = domain.DefaultUserID

var base = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

// StoreSuite runs against a fresh backend for every test.
type StoreSuite struct {
	suite.Suite
	NewBackend func(t *testing.T) Backend

	ctx     context.Context
	backend Backend
	repos   portsrepo.RepositoryProvider
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.backend = s.NewBackend(s.T())
	s.Require().NoError(s.backend.Init(s.ctx))
	s.repos = s.backend.Repositories()
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.backend.Close())
}

// --- helpers ---

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func ptr[T any](v T) *T {
	return &v
}

func audit(at time.Time) domain.AuditFields {
	return domain.AuditFields{CreatedAt: at, UpdatedAt: at}
}

func (s *StoreSuite) decimalEqual(want string, got decimal.Decimal) {
	s.T().Helper()
	s.Truef(dec(want).Equal(got), "expected %s, got %s", want, got.String())
}

func (s *StoreSuite) saveAsset(id, name string, assetType domain.AssetType, value string, at time.Time) domain.Asset {
	a := domain.Asset{ID: id, UserID: owner, Name: name, Type: assetType, CurrentValue: dec(value), AuditFields: audit(at)}
	s.Require().NoError(s.repos.AssetRepo.SaveAsset(s.ctx, a))
	return a
}

func (s *StoreSuite) saveDebt(id, name, balance string, at time.Time) domain.Debt {
	d := domain.Debt{ID: id, UserID: owner, Name: name, Type: domain.DebtOther, CurrentBalance: dec(balance), AuditFields: audit(at)}
	s.Require().NoError(s.repos.DebtRepo.SaveDebt(s.ctx, d))
	return d
}

func (s *StoreSuite) saveTxn(id string, txnType domain.TransactionType, amount string, date time.Time, assetID, debtID *string) domain.Transaction {
	t := domain.Transaction{
		ID:          id,
		UserID:      owner,
		Date:        date,
		Description: "txn " + id,
		Amount:      dec(amount),
		Type:        txnType,
		AssetID:     assetID,
		DebtID:      debtID,
		AuditFields: audit(date),
	}
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, t))
	return t
}

func (s *StoreSuite) debtBalance(id string) decimal.Decimal {
	s.T().Helper()
	d, err := s.repos.DebtRepo.FindDebtByID(s.ctx, owner, id)
	s.Require().NoError(err)
	return d.CurrentBalance
}

// --- records ---

func (s *StoreSuite) TestAssetCreateThenList() {
	s.saveAsset("asset_a", "Savings", domain.AssetBankAccount, "15000", base)

	assets, err := s.repos.AssetRepo.ListAssets(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(assets, 1)
	s.Equal("asset_a", assets[0].ID)
	s.Equal(owner, assets[0].UserID)
	s.Equal("Savings", assets[0].Name)
	s.Equal(domain.AssetBankAccount, assets[0].Type)
	s.decimalEqual("15000", assets[0].CurrentValue)
	s.False(assets[0].IsDeleted)
	s.True(base.Equal(assets[0].CreatedAt))
	s.True(base.Equal(assets[0].UpdatedAt))
}

func (s *StoreSuite) TestDebtCreateThenList() {
	d := domain.Debt{
		ID:             "debt_a",
		UserID:         owner,
		Name:           "Car Loan",
		Type:           domain.DebtCarLoan,
		CurrentBalance: dec("12500"),
		InterestRate:   ptr(dec("4.5")),
		AuditFields:    audit(base),
	}
	s.Require().NoError(s.repos.DebtRepo.SaveDebt(s.ctx, d))
	s.Require().NoError(s.repos.DebtRepo.SaveDebt(s.ctx, domain.Debt{
		ID: "debt_b", UserID: owner, Name: "Student Loan", Type: domain.DebtPersonalLoan,
		CurrentBalance: dec("30000"), AuditFields: audit(base.Add(time.Minute)),
	}))

	debts, err := s.repos.DebtRepo.ListDebts(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(debts, 2)
	s.Equal("debt_b", debts[0].ID)
	s.Nil(debts[0].InterestRate)

	s.Equal("debt_a", debts[1].ID)
	s.Equal(domain.DebtCarLoan, debts[1].Type)
	s.decimalEqual("12500", debts[1].CurrentBalance)
	s.Require().NotNil(debts[1].InterestRate)
	s.decimalEqual("4.5", *debts[1].InterestRate)
}

func (s *StoreSuite) TestSoftDeleteKeepsRow() {
	s.saveAsset("asset_a", "Savings", domain.AssetCash, "100", base)
	s.saveDebt("debt_a", "Loan", "50", base)
	later := base.Add(time.Hour)

	s.Require().NoError(s.repos.AssetRepo.DeleteAsset(s.ctx, owner, "asset_a", later))
	s.Require().NoError(s.repos.DebtRepo.DeleteDebt(s.ctx, owner, "debt_a", later))

	assets, err := s.repos.AssetRepo.ListAssets(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(assets)
	debts, err := s.repos.DebtRepo.ListDebts(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(debts)

	a, err := s.repos.AssetRepo.FindAssetByID(s.ctx, owner, "asset_a")
	s.Require().NoError(err)
	s.True(a.IsDeleted)
	s.True(later.Equal(a.UpdatedAt))

	d, err := s.repos.DebtRepo.FindDebtByID(s.ctx, owner, "debt_a")
	s.Require().NoError(err)
	s.True(d.IsDeleted)
}

func (s *StoreSuite) TestListNewestFirst() {
	s.saveAsset("asset_old", "Old", domain.AssetCash, "1", base)
	s.saveAsset("asset_new", "New", domain.AssetCash, "2", base.Add(time.Second))
	s.saveAsset("asset_mid", "Mid", domain.AssetCash, "3", base.Add(time.Millisecond))

	assets, err := s.repos.AssetRepo.ListAssets(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(assets, 3)
	s.Equal([]string{"asset_new", "asset_mid", "asset_old"}, []string{assets[0].ID, assets[1].ID, assets[2].ID})
}

func (s *StoreSuite) TestUpdateWritesSuppliedFieldsOnly() {
	s.saveAsset("asset_a", "Savings", domain.AssetBankAccount, "100", base)
	later := base.Add(time.Hour)

	s.Require().NoError(s.repos.AssetRepo.UpdateAsset(s.ctx, owner, "asset_a", domain.AssetPatch{CurrentValue: ptr(dec("250.5"))}, later))

	a, err := s.repos.AssetRepo.FindAssetByID(s.ctx, owner, "asset_a")
	s.Require().NoError(err)
	s.Equal("Savings", a.Name)
	s.Equal(domain.AssetBankAccount, a.Type)
	s.decimalEqual("250.5", a.CurrentValue)
	s.True(base.Equal(a.CreatedAt))
	s.True(later.Equal(a.UpdatedAt))

	s.saveDebt("debt_a", "Loan", "1000", base)
	s.Require().NoError(s.repos.DebtRepo.UpdateDebt(s.ctx, owner, "debt_a", domain.DebtPatch{
		Name:         ptr("Home Loan"),
		Type:         ptr(domain.DebtHomeLoan),
		InterestRate: ptr(dec("3.25")),
	}, later))

	d, err := s.repos.DebtRepo.FindDebtByID(s.ctx, owner, "debt_a")
	s.Require().NoError(err)
	s.Equal("Home Loan", d.Name)
	s.Equal(domain.DebtHomeLoan, d.Type)
	s.decimalEqual("1000", d.CurrentBalance)
	s.Require().NotNil(d.InterestRate)
	s.decimalEqual("3.25", *d.InterestRate)
}

func (s *StoreSuite) TestUpdateDebtClearsInterestRate() {
	s.saveDebt("debt_a", "Loan", "1000", base)
	later := base.Add(time.Hour)
	s.Require().NoError(s.repos.DebtRepo.UpdateDebt(s.ctx, owner, "debt_a", domain.DebtPatch{InterestRate: ptr(dec("3.25"))}, base))

	s.Require().NoError(s.repos.DebtRepo.UpdateDebt(s.ctx, owner, "debt_a", domain.DebtPatch{ClearInterestRate: true}, later))

	d, err := s.repos.DebtRepo.FindDebtByID(s.ctx, owner, "debt_a")
	s.Require().NoError(err)
	s.Nil(d.InterestRate)
	s.decimalEqual("1000", d.CurrentBalance)
	s.True(later.Equal(d.UpdatedAt))
}

func (s *StoreSuite) TestEmptyPatchIsNoop() {
	s.saveAsset("asset_a", "Savings", domain.AssetCash, "100", base)
	s.saveDebt("debt_a", "Loan", "100", base)
	s.saveTxn("transaction_a", domain.Expense, "10", base, nil, ptr("debt_a"))
	later := base.Add(time.Hour)

	s.Require().NoError(s.repos.AssetRepo.UpdateAsset(s.ctx, owner, "asset_a", domain.AssetPatch{}, later))
	s.Require().NoError(s.repos.DebtRepo.UpdateDebt(s.ctx, owner, "debt_a", domain.DebtPatch{}, later))
	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "transaction_a", domain.TransactionPatch{}, later))

	a, err := s.repos.AssetRepo.FindAssetByID(s.ctx, owner, "asset_a")
	s.Require().NoError(err)
	s.True(base.Equal(a.UpdatedAt))

	t, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, owner, "transaction_a")
	s.Require().NoError(err)
	s.True(base.Equal(t.UpdatedAt))
	s.decimalEqual("90", s.debtBalance("debt_a"))
}

func (s *StoreSuite) TestUnknownIDIsNoop() {
	now := base
	s.NoError(s.repos.AssetRepo.UpdateAsset(s.ctx, owner, "missing", domain.AssetPatch{Name: ptr("x")}, now))
	s.NoError(s.repos.AssetRepo.DeleteAsset(s.ctx, owner, "missing", now))
	s.NoError(s.repos.DebtRepo.UpdateDebt(s.ctx, owner, "missing", domain.DebtPatch{Name: ptr("x")}, now))
	s.NoError(s.repos.DebtRepo.DeleteDebt(s.ctx, owner, "missing", now))
	s.NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "missing", domain.TransactionPatch{Description: ptr("x")}, now))
	s.NoError(s.repos.TransactionRepo.DeleteTransaction(s.ctx, owner, "missing", now))
}

func (s *StoreSuite) TestFindMissingReturnsNotFound() {
	_, err := s.repos.AssetRepo.FindAssetByID(s.ctx, owner, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.DebtRepo.FindDebtByID(s.ctx, owner, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.TransactionRepo.FindTransactionByID(s.ctx, owner, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreSuite) TestRecordsAreScopedByUser() {
	s.Require().NoError(s.repos.AssetRepo.SaveAsset(s.ctx, domain.Asset{
		ID: "asset_other", UserID: "someone-else", Name: "Theirs", Type: domain.AssetCash,
		CurrentValue: dec("5"), AuditFields: audit(base),
	}))

	assets, err := s.repos.AssetRepo.ListAssets(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(assets)

	_, err = s.repos.AssetRepo.FindAssetByID(s.ctx, owner, "asset_other")
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.repos.AssetRepo.DeleteAsset(s.ctx, owner, "asset_other", base))
	a, err := s.repos.AssetRepo.FindAssetByID(s.ctx, "someone-else", "asset_other")
	s.Require().NoError(err)
	s.False(a.IsDeleted)
}

func (s *StoreSuite) TestDuplicateIDRejected() {
	s.saveAsset("asset_a", "Savings", domain.AssetCash, "1", base)

	err := s.repos.AssetRepo.SaveAsset(s.ctx, domain.Asset{ID: "asset_a", UserID: owner, Name: "Again", Type: domain.AssetCash, AuditFields: audit(base)})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- transactions and balances ---

func (s *StoreSuite) TestTransactionMissingReferenceFails() {
	err := s.repos.TransactionRepo.SaveTransaction(s.ctx, domain.Transaction{
		ID: "transaction_a", UserID: owner, Date: base, Description: "Payment",
		Amount: dec("10"), Type: domain.Expense, DebtID: ptr("no_such_debt"), AuditFields: audit(base),
	})
	s.ErrorIs(err, apperrors.ErrConstraint)

	err = s.repos.TransactionRepo.SaveTransaction(s.ctx, domain.Transaction{
		ID: "transaction_b", UserID: owner, Date: base, Description: "Payment",
		Amount: dec("10"), Type: domain.Expense, AssetID: ptr("no_such_asset"), AuditFields: audit(base),
	})
	s.ErrorIs(err, apperrors.ErrConstraint)

	txns, _, err := s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 0, nil)
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *StoreSuite) TestDebtBalanceFollowsCreations() {
	s.saveDebt("debt_a", "Loan", "1000", base)
	debtID := ptr("debt_a")

	s.saveTxn("t1", domain.Income, "200", base, nil, debtID)
	s.saveTxn("t2", domain.Expense, "50", base, nil, debtID)
	s.saveTxn("t3", domain.Transfer, "75", base, nil, debtID)
	s.saveTxn("t4", domain.Expense, "25.5", base, nil, debtID)

	s.decimalEqual("1124.5", s.debtBalance("debt_a"))
}

func (s *StoreSuite) TestUpdateTransactionCompensatesBalances() {
	s.saveDebt("debt_a", "Loan A", "1000", base)
	s.saveDebt("debt_b", "Loan B", "500", base)
	s.saveTxn("t1", domain.Expense, "100", base, nil, ptr("debt_a"))
	s.decimalEqual("900", s.debtBalance("debt_a"))
	later := base.Add(time.Hour)

	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "t1", domain.TransactionPatch{Amount: ptr(dec("40"))}, later))
	s.decimalEqual("960", s.debtBalance("debt_a"))

	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "t1", domain.TransactionPatch{Type: ptr(domain.Income)}, later))
	s.decimalEqual("1040", s.debtBalance("debt_a"))

	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "t1", domain.TransactionPatch{DebtID: ptr("debt_b")}, later))
	s.decimalEqual("1000", s.debtBalance("debt_a"))
	s.decimalEqual("540", s.debtBalance("debt_b"))

	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "t1", domain.TransactionPatch{DebtID: ptr("")}, later))
	s.decimalEqual("500", s.debtBalance("debt_b"))

	t, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, owner, "t1")
	s.Require().NoError(err)
	s.Nil(t.DebtID)
	s.True(later.Equal(t.UpdatedAt))
}

func (s *StoreSuite) TestUpdateToMissingDebtRollsBack() {
	s.saveDebt("debt_a", "Loan", "1000", base)
	s.saveTxn("t1", domain.Expense, "100", base, nil, ptr("debt_a"))

	err := s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "t1", domain.TransactionPatch{DebtID: ptr("no_such_debt")}, base.Add(time.Hour))
	s.ErrorIs(err, apperrors.ErrConstraint)

	s.decimalEqual("900", s.debtBalance("debt_a"))
	t, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, owner, "t1")
	s.Require().NoError(err)
	s.Require().NotNil(t.DebtID)
	s.Equal("debt_a", *t.DebtID)
}

func (s *StoreSuite) TestDeleteTransactionReversesBalance() {
	s.saveDebt("debt_a", "Loan", "1000", base)
	s.saveTxn("t1", domain.Income, "300", base, nil, ptr("debt_a"))
	s.decimalEqual("1300", s.debtBalance("debt_a"))

	s.Require().NoError(s.repos.TransactionRepo.DeleteTransaction(s.ctx, owner, "t1", base.Add(time.Hour)))
	s.decimalEqual("1000", s.debtBalance("debt_a"))

	// second delete must not reverse again
	s.Require().NoError(s.repos.TransactionRepo.DeleteTransaction(s.ctx, owner, "t1", base.Add(2*time.Hour)))
	s.decimalEqual("1000", s.debtBalance("debt_a"))

	// editing a deleted transaction leaves balances alone
	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, owner, "t1", domain.TransactionPatch{Amount: ptr(dec("900"))}, base.Add(3*time.Hour)))
	s.decimalEqual("1000", s.debtBalance("debt_a"))

	t, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, owner, "t1")
	s.Require().NoError(err)
	s.True(t.IsDeleted)
}

func (s *StoreSuite) TestListTransactionsJoinsNames() {
	s.saveAsset("asset_a", "Savings Account", domain.AssetBankAccount, "15000", base)
	s.saveDebt("debt_a", "Car Loan", "12500", base)
	s.saveTxn("t1", domain.Expense, "500", base, ptr("asset_a"), ptr("debt_a"))
	s.saveTxn("t2", domain.Income, "5000", base.Add(-time.Hour), nil, nil)

	txns, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 0, nil)
	s.Require().NoError(err)
	s.Nil(next)
	s.Require().Len(txns, 2)

	s.Equal("t1", txns[0].ID)
	s.Require().NotNil(txns[0].AssetName)
	s.Equal("Savings Account", *txns[0].AssetName)
	s.Require().NotNil(txns[0].DebtName)
	s.Equal("Car Loan", *txns[0].DebtName)
	s.True(base.Equal(txns[0].Date))

	s.Equal("t2", txns[1].ID)
	s.Nil(txns[1].AssetName)
	s.Nil(txns[1].DebtName)
}

func (s *StoreSuite) TestListTransactionsPaginates() {
	day := 24 * time.Hour
	s.saveTxn("t1", domain.Expense, "1", base.Add(-4*day), nil, nil)
	s.saveTxn("t2", domain.Expense, "1", base.Add(-3*day), nil, nil)
	s.saveTxn("t3", domain.Expense, "1", base.Add(-2*day), nil, nil)
	s.saveTxn("t4", domain.Expense, "1", base.Add(-1*day), nil, nil)
	s.saveTxn("t5", domain.Expense, "1", base, nil, nil)
	s.Require().NoError(s.repos.TransactionRepo.DeleteTransaction(s.ctx, owner, "t3", base))

	var ids []string
	var token *string
	pages := 0
	for {
		page, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 2, token)
		s.Require().NoError(err)
		for _, t := range page {
			ids = append(ids, t.ID)
		}
		pages++
		if next == nil {
			break
		}
		token = next
		s.Require().Less(pages, 5)
	}

	s.Equal([]string{"t5", "t4", "t2", "t1"}, ids)
	s.Equal(2, pages)
}

func (s *StoreSuite) TestListTransactionsPaginatesAcrossTies() {
	s.saveTxn("tie_a", domain.Expense, "1", base, nil, nil)
	s.saveTxn("tie_b", domain.Expense, "1", base, nil, nil)
	s.saveTxn("tie_c", domain.Expense, "1", base, nil, nil)

	var ids []string
	var token *string
	for pages := 0; ; pages++ {
		s.Require().Less(pages, 5)
		page, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 1, token)
		s.Require().NoError(err)
		for _, t := range page {
			ids = append(ids, t.ID)
		}
		if next == nil {
			break
		}
		token = next
	}

	s.Equal([]string{"tie_c", "tie_b", "tie_a"}, ids)
}

func (s *StoreSuite) TestListTransactionsSameDateOrdersByCreation() {
	for i, id := range []string{"t1", "t2", "t3"} {
		t := domain.Transaction{
			ID: id, UserID: owner, Date: base, Description: id, Amount: dec("1"), Type: domain.Expense,
			AuditFields: audit(base.Add(time.Duration(i) * time.Second)),
		}
		s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, t))
	}

	first, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Equal("t3", first[0].ID)
	s.Equal("t2", first[1].ID)
	s.Require().NotNil(next)

	rest, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 2, next)
	s.Require().NoError(err)
	s.Nil(next)
	s.Require().Len(rest, 1)
	s.Equal("t1", rest[0].ID)
}

func (s *StoreSuite) TestListTransactionsRejectsBadToken() {
	_, _, err := s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 10, ptr("not-a-token!"))
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- profile ---

func (s *StoreSuite) TestProfileUpsert() {
	_, err := s.repos.ProfileRepo.GetProfile(s.ctx, owner)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.repos.ProfileRepo.UpsertProfile(s.ctx, domain.Profile{ID: owner, Username: ptr("demo"), UpdatedAt: base}))
	p, err := s.repos.ProfileRepo.GetProfile(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().NotNil(p.Username)
	s.Equal("demo", *p.Username)
	s.Nil(p.FullName)

	later := base.Add(time.Hour)
	s.Require().NoError(s.repos.ProfileRepo.UpsertProfile(s.ctx, domain.Profile{ID: owner, Username: ptr("demo"), FullName: ptr("Demo User"), UpdatedAt: later}))
	p, err = s.repos.ProfileRepo.GetProfile(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().NotNil(p.FullName)
	s.Equal("Demo User", *p.FullName)
	s.True(later.Equal(p.UpdatedAt))
}

// --- lifecycle ---

func (s *StoreSuite) TestNotReadyBeforeInit() {
	fresh := s.NewBackend(s.T())
	repos := fresh.Repositories()

	_, err := repos.AssetRepo.ListAssets(s.ctx, owner)
	s.ErrorIs(err, apperrors.ErrNotReady)
	err = repos.TransactionRepo.SaveTransaction(s.ctx, domain.Transaction{ID: "t1", UserID: owner, Date: base, Description: "x", Amount: dec("1"), Type: domain.Income, AuditFields: audit(base)})
	s.ErrorIs(err, apperrors.ErrNotReady)
	s.NoError(fresh.Close())
}

func (s *StoreSuite) TestNotReadyAfterClose() {
	s.saveAsset("asset_a", "Savings", domain.AssetCash, "1", base)
	s.Require().NoError(s.backend.Close())

	_, err := s.repos.AssetRepo.ListAssets(s.ctx, owner)
	s.ErrorIs(err, apperrors.ErrNotReady)
	_, _, err = s.repos.TransactionRepo.ListTransactions(s.ctx, owner, 0, nil)
	s.ErrorIs(err, apperrors.ErrNotReady)
	s.ErrorIs(s.repos.DebtRepo.DeleteDebt(s.ctx, owner, "debt_a", base), apperrors.ErrNotReady)
	s.ErrorIs(s.repos.AssetRepo.UpdateAsset(s.ctx, owner, "asset_a", domain.AssetPatch{}, base), apperrors.ErrNotReady)
}

// --- end to end ---

func (s *StoreSuite) TestNetWorthScenario() {
	s.saveAsset("asset_a", "Savings", domain.AssetBankAccount, "15000", base)
	assets, err := s.repos.AssetRepo.ListAssets(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(assets, 1)
	s.decimalEqual("15000", assets[0].CurrentValue)

	s.saveDebt("debt_a", "Car Loan", "12500", base)
	s.saveTxn("t1", domain.Expense, "500", base, nil, ptr("debt_a"))
	s.decimalEqual("12000", s.debtBalance("debt_a"))

	debts, err := s.repos.DebtRepo.ListDebts(s.ctx, owner)
	s.Require().NoError(err)
	dash := accounting.ComputeDashboard(assets, debts)
	s.decimalEqual("3000", dash.NetWorth)

	s.Require().NoError(s.repos.AssetRepo.DeleteAsset(s.ctx, owner, "asset_a", base.Add(time.Minute)))
	assets, err = s.repos.AssetRepo.ListAssets(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(assets)

	dash = accounting.ComputeDashboard(assets, debts)
	s.True(dash.TotalAssets.IsZero())
	s.decimalEqual("-12000", dash.NetWorth)
	s.Empty(dash.AssetBreakdown)
}
