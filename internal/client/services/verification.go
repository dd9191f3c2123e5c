package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldassets/fieldassets/internal/client/api"
	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/client/scan"
	"github.com/fieldassets/fieldassets/internal/common"
	"github.com/fieldassets/fieldassets/internal/logging"
)

// VerificationService validates scanned barcodes against the expected
// inventory of one customer location and reports verified equipment to the
// server. It implements scan.Processor, so a scan.Session can drive it
// directly.
//
// The expected set is server truth fetched at session start; IsVerified
// flags are refreshed from the server after every successful scan, never
// flipped optimistically.
type VerificationService struct {
	client       api.Client
	customerCode string
	userCode     string
	log          logging.Logger

	mu        sync.Mutex
	inventory []models.InventoryItem
}

var _ scan.Processor = (*VerificationService)(nil)

// NewVerificationService constructs a VerificationService for one customer
// location.
func NewVerificationService(client api.Client, customerCode, userCode string, log logging.Logger) *VerificationService {
	return &VerificationService{
		client:       client,
		customerCode: customerCode,
		userCode:     userCode,
		log:          log,
	}
}

// LoadInventory fetches the expected-inventory set from the server.
func (s *VerificationService) LoadInventory(ctx context.Context) error {
	items, err := s.client.InventoryForLocation(ctx, s.customerCode)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.inventory = items
	s.mu.Unlock()
	return nil
}

// Inventory returns a copy of the current expected set.
func (s *VerificationService) Inventory() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InventoryItem(nil), s.inventory...)
}

// VerifiedCount returns how many expected items the server reports as
// verified.
func (s *VerificationService) VerifiedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.inventory {
		if item.IsVerified {
			n++
		}
	}
	return n
}

func (s *VerificationService) lookup(barcode string) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.inventory {
		if item.Barcode == barcode {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// Process handles one decoded payload. A payload outside the expected set
// is rejected without any network call. A matching payload is reported to
// the server, and on success the expected set is re-fetched so the
// verified flags reflect server truth.
func (s *VerificationService) Process(ctx context.Context, payload string) (scan.Outcome, error) {
	item, ok := s.lookup(payload)
	if !ok {
		return scan.OutcomeRejected,
			fmt.Errorf("%w: equipment %s does not belong to this location", common.ErrValidation, payload)
	}

	if err := s.client.VerifyItem(ctx, item.Barcode, s.customerCode, s.userCode); err != nil {
		return scan.OutcomeFailed, err
	}

	if err := s.LoadInventory(ctx); err != nil {
		// The mutation itself succeeded; a failed refresh only leaves the
		// local view stale until the next fetch.
		s.log.Warn(ctx, "inventory refresh after verification failed", "error", err)
	}
	return scan.OutcomeVerified, nil
}
