// Package dealers persists the locally cached dealer list, scoped by the
// owning user's tag.
package dealers

import (
	"context"

	"github.com/fieldassets/fieldassets/internal/client/models"
)

// Repository is the dealer storage contract.
type Repository interface {
	// ReplaceForOwner deletes every dealer row owned by ownerTag and
	// inserts the given list. Callers that need atomicity bind the
	// repository to a transaction (see dbx.WithTx).
	ReplaceForOwner(ctx context.Context, ownerTag string, dealers []models.Dealer) error

	// ListByOwner returns ownerTag's dealers ordered by name ascending.
	ListByOwner(ctx context.Context, ownerTag string) ([]models.Dealer, error)
}
