package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/fieldassets/fieldassets/internal/client/api"
	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/logging"
)

// SyncResult reports the aggregate row counts of a completed full sync.
type SyncResult struct {
	DealerCount   int
	CustomerCount int
}

// SyncService runs the user-triggered full refresh of the local catalog:
// fetch the user's dealers, then every dealer's customers, then replace the
// user's local scope wholesale. Sync is all-or-nothing; a failure at any
// fetch leaves the local cache byte-for-byte untouched.
type SyncService struct {
	client  api.Client
	store   CatalogStore
	limiter *rate.Limiter
	log     logging.Logger
}

// NewSyncService constructs a SyncService. pacing is the minimum spacing
// between remote calls; zero disables pacing.
func NewSyncService(client api.Client, store CatalogStore, pacing time.Duration, log logging.Logger) *SyncService {
	limit := rate.Inf
	if pacing > 0 {
		limit = rate.Every(pacing)
	}
	return &SyncService{
		client:  client,
		store:   store,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// RunFullSync refreshes username's local catalog from the server.
//
// All fetches complete before the first local write, and the customer
// fetches run sequentially, one dealer at a time: the backend and the
// device link are bandwidth constrained. Dealers are written before
// customers so a reader never sees a customer without its parent dealer.
func (s *SyncService) RunFullSync(ctx context.Context, username string) (*SyncResult, error) {
	s.log.Info(ctx, "full sync started", "user", username)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	dealers, err := s.client.DealersForUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("fetching dealers: %w", err)
	}

	allCustomers := make([]models.Customer, 0)
	for _, dealer := range dealers {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		batch, err := s.client.CustomersForDealer(ctx, username, dealer.DealerCode)
		if err != nil {
			return nil, fmt.Errorf("fetching customers of dealer %s: %w", dealer.DealerCode, err)
		}
		s.log.Info(ctx, "customers fetched", "dealer", dealer.DealerCode, "count", len(batch))
		allCustomers = append(allCustomers, batch...)
	}

	if err := s.store.ReplaceDealers(ctx, username, dealers); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceCustomers(ctx, username, allCustomers); err != nil {
		return nil, err
	}

	result := &SyncResult{DealerCount: len(dealers), CustomerCount: len(allCustomers)}
	s.log.Info(ctx, "full sync finished", "dealers", result.DealerCount, "customers", result.CustomerCount)
	return result, nil
}
