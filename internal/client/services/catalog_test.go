package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldassets/fieldassets/internal/client/models"
)

func sampleCustomers() []models.Customer {
	return []models.Customer{
		{CustomerCode: "C100", Name: "Kahve Durağı"},
		{CustomerCode: "C200", Name: "Merkez Market"},
		{CustomerCode: "C310", Name: "kahveci Ali"},
		{CustomerCode: "X100", Name: "Plaza Büfe"},
	}
}

func TestFilterCustomers_EmptyQueryReturnsAll(t *testing.T) {
	all := sampleCustomers()
	got := FilterCustomers(all, "")
	assert.Equal(t, all, got)
	// a copy, not the same backing array
	got[0].Name = "changed"
	assert.Equal(t, "Kahve Durağı", all[0].Name)
}

func TestFilterCustomers_NameMatchIsCaseInsensitive(t *testing.T) {
	got := FilterCustomers(sampleCustomers(), "kahve")
	require.Len(t, got, 2)
	assert.Equal(t, "C100", got[0].CustomerCode)
	assert.Equal(t, "C310", got[1].CustomerCode)
}

func TestFilterCustomers_CodeMatchIsAsTyped(t *testing.T) {
	got := FilterCustomers(sampleCustomers(), "100")
	require.Len(t, got, 2)
	assert.Equal(t, "C100", got[0].CustomerCode)
	assert.Equal(t, "X100", got[1].CustomerCode)

	// lowercase query does not match uppercase codes
	got = FilterCustomers(sampleCustomers(), "c100")
	assert.Empty(t, got)
}

func TestFilterCustomers_PreservesOrder(t *testing.T) {
	got := FilterCustomers(sampleCustomers(), "1")
	codes := make([]string, 0, len(got))
	for _, c := range got {
		codes = append(codes, c.CustomerCode)
	}
	assert.Equal(t, []string{"C100", "C310", "X100"}, codes)
}

func TestFilterCustomers_NoMatch(t *testing.T) {
	got := FilterCustomers(sampleCustomers(), "zzz")
	assert.Empty(t, got)
}

func TestCatalogService_ReadsFromStore(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceDealers(ctx, "tech1", []models.Dealer{
		{DealerCode: "BAYI01", Name: "Acme"},
	}))
	require.NoError(t, store.ReplaceCustomers(ctx, "tech1", []models.Customer{
		{CustomerCode: "C001", DealerCode: "BAYI01", Name: "Acme Branch"},
	}))

	svc := NewCatalogService(store, testLogger())

	dealers, err := svc.Dealers(ctx, "tech1")
	require.NoError(t, err)
	require.Len(t, dealers, 1)
	assert.Equal(t, "Acme", dealers[0].Name)

	customers, err := svc.CustomersFor(ctx, "tech1", "BAYI01")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "C001", customers[0].CustomerCode)

	// another user sees an empty catalog, not this one's
	other, err := svc.Dealers(ctx, "tech2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
