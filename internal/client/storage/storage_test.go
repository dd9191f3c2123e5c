package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/common"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	s := openStore(t)

	// re-running migrations on an initialized database must not fail
	require.NoError(t, RunMigrations(context.Background(), s.db))
}

func TestReplaceAndList_RoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceDealers(ctx, "tech1", []models.Dealer{
		{DealerCode: "BAYI01", Name: "Acme"},
	}))
	require.NoError(t, s.ReplaceCustomers(ctx, "tech1", []models.Customer{
		{CustomerCode: "C001", DealerCode: "BAYI01", Name: "Acme Branch"},
	}))

	dealers, err := s.ListDealers(ctx, "tech1")
	require.NoError(t, err)
	require.Len(t, dealers, 1)
	assert.Equal(t, "BAYI01", dealers[0].DealerCode)

	got, err := s.ListCustomers(ctx, "tech1", "BAYI01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "C001", got[0].CustomerCode)

	// scope isolation: another user sees nothing
	other, err := s.ListCustomers(ctx, "tech2", "BAYI01")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestReplaceCustomers_RollsBackOnFailure(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceCustomers(ctx, "tech1", []models.Customer{
		{CustomerCode: "C001", DealerCode: "BAYI01", Name: "Acme Branch"},
	}))

	// duplicate customer_code violates the per-owner unique constraint
	// midway through the insert loop; the delete must roll back too
	err := s.ReplaceCustomers(ctx, "tech1", []models.Customer{
		{CustomerCode: "C002", DealerCode: "BAYI01", Name: "Globex Kiosk"},
		{CustomerCode: "C002", DealerCode: "BAYI01", Name: "Globex Kiosk again"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStorage)

	got, err := s.ListCustomers(ctx, "tech1", "BAYI01")
	require.NoError(t, err)
	require.Len(t, got, 1, "previous snapshot must be intact after a failed replace")
	assert.Equal(t, "C001", got[0].CustomerCode)
}

func TestReplaceDealers_RollsBackOnFailure(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceDealers(ctx, "tech1", []models.Dealer{
		{DealerCode: "BAYI01", Name: "Acme"},
	}))

	err := s.ReplaceDealers(ctx, "tech1", []models.Dealer{
		{DealerCode: "BAYI02", Name: "Globex"},
		{DealerCode: "BAYI02", Name: "Globex again"},
	})
	require.Error(t, err)

	got, err := s.ListDealers(ctx, "tech1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BAYI01", got[0].DealerCode)
}
