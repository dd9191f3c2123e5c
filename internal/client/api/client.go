// Package api implements the remote field-service REST API consumed by the
// client. All business logic lives on the server; this package only shapes
// requests, decodes responses and classifies transport failures.
package api

import (
	"context"

	"github.com/fieldassets/fieldassets/internal/client/models"
)

// Client is the remote API surface used by the client services.
//
// All methods honor context cancellation and return errors classified
// against the common sentinels: common.ErrUnavailable when the server
// could not be reached, common.ErrNetwork for non-2xx or malformed
// responses, and plain errors carrying the server's message when the
// server itself declines an operation.
type Client interface {
	// Login authenticates the operator and returns their identity.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// DealersForUser lists the dealers assigned to username.
	DealersForUser(ctx context.Context, username string) ([]models.Dealer, error)

	// CustomersForDealer lists one dealer's customers for username.
	CustomersForDealer(ctx context.Context, username, dealerCode string) ([]models.Customer, error)

	// InventoryForLocation fetches the expected-inventory set for a
	// customer location.
	InventoryForLocation(ctx context.Context, customerCode string) ([]models.InventoryItem, error)

	// VerifyItem reports a scanned barcode as present at the location.
	VerifyItem(ctx context.Context, barcode, customerCode, userCode string) error

	// CreateInstallRequest files a new installation request and returns
	// the server-assigned request number.
	CreateInstallRequest(ctx context.Context, draft models.InstallRequestDraft) (string, error)

	// InstallRequests lists installation requests, optionally filtered
	// by status.
	InstallRequests(ctx context.Context, status string) ([]models.InstallRequest, error)

	// CompleteInstallRequest closes a request with the barcode of the
	// installed equipment.
	CompleteInstallRequest(ctx context.Context, barcode, requestNo string) error

	// CancelInstallRequest cancels a pending request.
	CancelInstallRequest(ctx context.Context, requestNo string) error
}
