// Package services contains the application services of the fieldassets
// client: login, full synchronization, catalog reads, scan verification
// and install-request handling.
package services

import (
	"context"
	"strings"

	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/logging"
)

// CatalogStore is the slice of the local store used by the catalog and
// sync services.
type CatalogStore interface {
	ReplaceDealers(ctx context.Context, ownerTag string, dealers []models.Dealer) error
	ReplaceCustomers(ctx context.Context, ownerTag string, customers []models.Customer) error
	ListDealers(ctx context.Context, ownerTag string) ([]models.Dealer, error)
	ListCustomers(ctx context.Context, ownerTag, dealerCode string) ([]models.Customer, error)
}

// CatalogService serves the dealer/customer lists from the local cache.
// It never talks to the network; stale data is refreshed only by an
// explicit full sync.
type CatalogService struct {
	store CatalogStore
	log   logging.Logger
}

// NewCatalogService constructs a CatalogService over the given store.
func NewCatalogService(store CatalogStore, log logging.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

// Dealers returns the cached dealers for ownerTag.
func (s *CatalogService) Dealers(ctx context.Context, ownerTag string) ([]models.Dealer, error) {
	return s.store.ListDealers(ctx, ownerTag)
}

// CustomersFor returns the cached customers of one dealer for ownerTag.
func (s *CatalogService) CustomersFor(ctx context.Context, ownerTag, dealerCode string) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx, ownerTag, dealerCode)
}

// FilterCustomers returns the customers whose name contains query
// case-insensitively, or whose customer code contains query as typed.
// The source slice is not modified and relative order is preserved; the
// function is cheap enough to re-run on every keystroke.
func FilterCustomers(customers []models.Customer, query string) []models.Customer {
	if query == "" {
		return append([]models.Customer(nil), customers...)
	}
	lower := strings.ToLower(query)
	result := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), lower) || strings.Contains(c.CustomerCode, query) {
			result = append(result, c)
		}
	}
	return result
}
