package account_test

import (
	"context"
	"sync"
	"testing"

	"github.com/amirasaad/finledger/infra"
	infra_repository "github.com/amirasaad/finledger/infra/repository"
	"github.com/amirasaad/finledger/pkg/config"
	"github.com/amirasaad/finledger/pkg/domain"
	accountsvc "github.com/amirasaad/finledger/pkg/service/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteService opens a private in-memory sqlite database through the same
// connection path the server uses for STORE_DRIVER=sqlite.
func newSQLiteService(t *testing.T) *accountsvc.Service {
	t.Helper()
	cfg := &config.App{
		Env:   "test",
		Store: &config.Store{Driver: config.StoreSQLite},
		DB:    &config.DB{Url: "file:" + uuid.NewString() + "?mode=memory&cache=shared"},
	}
	db, err := infra.NewDBConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return accountsvc.NewService(nil, infra_repository.NewUoW(db), discard)
}

func TestSQLiteService_DuplicateCreate(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteService(t)

	_, err := svc.CreateAccount(ctx, "111", "Alice")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "111", "Mallory")
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

	alice, err := svc.GetAccount(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.Name)
}

func TestSQLiteService_ConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteService(t)
	c, err := svc.CreateAccount(ctx, "111", "Alice")
	require.NoError(t, err)
	require.NoError(t, svc.Deposit(ctx, c, "", decimal.NewFromInt(100)))

	const workers = 10
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot, err := svc.GetAccount(ctx, "111")
			if err != nil {
				return
			}
			if svc.Withdraw(ctx, snapshot, decimal.NewFromInt(30)) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, ok)
	final, err := svc.GetAccount(ctx, "111")
	require.NoError(t, err)
	assert.True(t, svc.Balance(final).Equal(decimal.NewFromInt(10)))
	assert.Len(t, final.Statements, 4)
}
