package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/SscSPs/networth_tracker/internal/repositories/memory"
	"github.com/SscSPs/networth_tracker/internal/repositories/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storetest.StoreSuite{
		NewBackend: func(t *testing.T) storetest.Backend {
			return memory.NewStore(memory.Options{})
		},
	})
}

func TestMemoryStore_SeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.Options{SeedDemoData: true})
	require.NoError(t, store.Init(ctx))
	defer store.Close()
	repos := store.Repositories()

	assets, err := repos.AssetRepo.ListAssets(ctx, domain.DefaultUserID)
	require.NoError(t, err)
	assert.Len(t, assets, 2)

	debts, err := repos.DebtRepo.ListDebts(ctx, domain.DefaultUserID)
	require.NoError(t, err)
	assert.Len(t, debts, 2)

	txns, _, err := repos.TransactionRepo.ListTransactions(ctx, domain.DefaultUserID, 0, nil)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "Salary", txns[0].Description)
	require.NotNil(t, txns[0].AssetName)
	assert.Equal(t, "Savings Account", *txns[0].AssetName)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.Options{SeedDemoData: true})
	require.NoError(t, store.Init(ctx))
	repos := store.Repositories()

	d, err := repos.DebtRepo.FindDebtByID(ctx, domain.DefaultUserID, "debt_1")
	require.NoError(t, err)
	require.NotNil(t, d.InterestRate)
	*d.InterestRate = d.InterestRate.Add(*d.InterestRate)

	again, err := repos.DebtRepo.FindDebtByID(ctx, domain.DefaultUserID, "debt_1")
	require.NoError(t, err)
	assert.Equal(t, "4.5", again.InterestRate.String())
}

func TestMemoryStore_ReinitKeepsData(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.Options{SeedDemoData: true, OwnerUserID: "owner-1"})
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Close())
	require.NoError(t, store.Init(ctx))

	assets, err := store.Repositories().AssetRepo.ListAssets(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, assets, 2)
}
