package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/fieldassets/fieldassets/internal/client/api"
	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAPI is a scriptable api.Client recording every call in order.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	loginUser *models.User
	loginErr  error

	dealers    []models.Dealer
	dealersErr error

	customersByDealer map[string][]models.Customer
	customersErr      map[string]error

	inventory    []models.InventoryItem
	inventoryErr error

	verifyErr error
	// applied to the expected set after a successful VerifyItem, so the
	// next InventoryForLocation reflects the server-side change
	inventoryAfterVerify []models.InventoryItem

	createNo    string
	createErr   error
	requests    []models.InstallRequest
	requestsErr error
	completeErr error
	cancelErr   error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeAPI) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.record("login:" + username)
	return f.loginUser, f.loginErr
}

func (f *fakeAPI) DealersForUser(ctx context.Context, username string) ([]models.Dealer, error) {
	f.record("dealers:" + username)
	return f.dealers, f.dealersErr
}

func (f *fakeAPI) CustomersForDealer(ctx context.Context, username, dealerCode string) ([]models.Customer, error) {
	f.record("customers:" + dealerCode)
	if err := f.customersErr[dealerCode]; err != nil {
		return nil, err
	}
	return f.customersByDealer[dealerCode], nil
}

func (f *fakeAPI) InventoryForLocation(ctx context.Context, customerCode string) ([]models.InventoryItem, error) {
	f.record("inventory:" + customerCode)
	return f.inventory, f.inventoryErr
}

func (f *fakeAPI) VerifyItem(ctx context.Context, barcode, customerCode, userCode string) error {
	f.record("verify:" + barcode)
	if f.verifyErr != nil {
		return f.verifyErr
	}
	if f.inventoryAfterVerify != nil {
		f.inventory = f.inventoryAfterVerify
	}
	return nil
}

func (f *fakeAPI) CreateInstallRequest(ctx context.Context, draft models.InstallRequestDraft) (string, error) {
	f.record("create:" + draft.CustomerCode)
	return f.createNo, f.createErr
}

func (f *fakeAPI) InstallRequests(ctx context.Context, status string) ([]models.InstallRequest, error) {
	f.record("requests:" + status)
	return f.requests, f.requestsErr
}

func (f *fakeAPI) CompleteInstallRequest(ctx context.Context, barcode, requestNo string) error {
	f.record("complete:" + requestNo + ":" + barcode)
	return f.completeErr
}

func (f *fakeAPI) CancelInstallRequest(ctx context.Context, requestNo string) error {
	f.record("cancel:" + requestNo)
	return f.cancelErr
}

// failingStore is a CatalogStore whose every method fails.
type failingStore struct{ err error }

func (s *failingStore) ReplaceDealers(ctx context.Context, ownerTag string, dealers []models.Dealer) error {
	return s.err
}

func (s *failingStore) ReplaceCustomers(ctx context.Context, ownerTag string, customers []models.Customer) error {
	return s.err
}

func (s *failingStore) ListDealers(ctx context.Context, ownerTag string) ([]models.Dealer, error) {
	return nil, s.err
}

func (s *failingStore) ListCustomers(ctx context.Context, ownerTag, dealerCode string) ([]models.Customer, error) {
	return nil, s.err
}
