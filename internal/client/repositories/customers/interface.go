// Package customers persists the locally cached customer list, scoped by
// the owning user's tag.
package customers

import (
	"context"

	"github.com/fieldassets/fieldassets/internal/client/models"
)

// Repository is the customer storage contract.
type Repository interface {
	// ReplaceForOwner deletes every customer row owned by ownerTag and
	// inserts the given list. The scope is the whole owner, not a single
	// dealer, because a sync repopulates every dealer's customers together.
	ReplaceForOwner(ctx context.Context, ownerTag string, customers []models.Customer) error

	// ListByOwnerAndDealer returns ownerTag's customers for one dealer,
	// ordered by name ascending.
	ListByOwnerAndDealer(ctx context.Context, ownerTag, dealerCode string) ([]models.Customer, error)
}
