package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/common"
)

// HTTPClient is the production Client over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a Client talking to the API rooted at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// statusResponse is the envelope used by the verification endpoints.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// successResponse is the envelope used by the request/login endpoints.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", common.ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s", common.ErrNetwork, resp.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decoding response: %w", common.ErrNetwork, err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	payload := map[string]string{"username": username, "password": password}
	var resp struct {
		successResponse
		models.User
	}
	if err := c.postJSON(ctx, "/api/login", payload, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("login rejected: %s", orUnknown(resp.Message))
	}
	return &resp.User, nil
}

func (c *HTTPClient) DealersForUser(ctx context.Context, username string) ([]models.Dealer, error) {
	q := url.Values{"username": {username}}
	var dealers []models.Dealer
	if err := c.getJSON(ctx, "/api/my-dealers", q, &dealers); err != nil {
		return nil, err
	}
	return dealers, nil
}

func (c *HTTPClient) CustomersForDealer(ctx context.Context, username, dealerCode string) ([]models.Customer, error) {
	q := url.Values{"username": {username}, "dealer_code": {dealerCode}}
	var customers []models.Customer
	if err := c.getJSON(ctx, "/api/my-customers", q, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *HTTPClient) InventoryForLocation(ctx context.Context, customerCode string) ([]models.InventoryItem, error) {
	var resp struct {
		statusResponse
		Inventory []models.InventoryItem `json:"inventory"`
	}
	if err := c.getJSON(ctx, "/api/verification/inventory/"+url.PathEscape(customerCode), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: inventory fetch failed: %s", common.ErrNetwork, orUnknown(resp.Message))
	}
	return resp.Inventory, nil
}

func (c *HTTPClient) VerifyItem(ctx context.Context, barcode, customerCode, userCode string) error {
	payload := map[string]string{
		"barcode_no":    barcode,
		"customer_code": customerCode,
		"user_code":     userCode,
	}
	var resp statusResponse
	if err := c.postJSON(ctx, "/api/verification/store", payload, &resp); err != nil {
		return err
	}
	if resp.Status != "success" {
		return fmt.Errorf("%w: verification rejected: %s", common.ErrNetwork, orUnknown(resp.Message))
	}
	return nil
}

func (c *HTTPClient) CreateInstallRequest(ctx context.Context, draft models.InstallRequestDraft) (string, error) {
	var resp struct {
		successResponse
		RequestNo string `json:"request_no"`
	}
	if err := c.postJSON(ctx, "/api/create-install-request", draft, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("request not created: %s", orUnknown(resp.Message))
	}
	return resp.RequestNo, nil
}

func (c *HTTPClient) InstallRequests(ctx context.Context, status string) ([]models.InstallRequest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var requests []models.InstallRequest
	if err := c.getJSON(ctx, "/api/my-install-requests", q, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *HTTPClient) CompleteInstallRequest(ctx context.Context, barcode, requestNo string) error {
	payload := map[string]string{"barcode": barcode, "request_no": requestNo}
	var resp successResponse
	if err := c.postJSON(ctx, "/api/complete-install-request", payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("request not completed: %s", orUnknown(resp.Message))
	}
	return nil
}

func (c *HTTPClient) CancelInstallRequest(ctx context.Context, requestNo string) error {
	payload := map[string]string{"request_no": requestNo}
	var resp successResponse
	if err := c.postJSON(ctx, "/api/cancel-install-request", payload, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("request not cancelled: %s", orUnknown(resp.Message))
	}
	return nil
}

func orUnknown(msg string) string {
	if msg == "" {
		return "unknown reason"
	}
	return msg
}
