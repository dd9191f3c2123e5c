package services

import (
	"context"
	"strings"

	"github.com/fieldassets/fieldassets/internal/client/api"
	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/client/scan"
	"github.com/fieldassets/fieldassets/internal/logging"
)

// RequestService handles equipment installation requests: creation by
// sales staff, listing, scan-driven completion by technicians, and
// cancellation.
type RequestService struct {
	client api.Client
	log    logging.Logger
}

// NewRequestService constructs a RequestService.
func NewRequestService(client api.Client, log logging.Logger) *RequestService {
	return &RequestService{client: client, log: log}
}

// Create files a new install request and returns the server-assigned
// request number.
func (s *RequestService) Create(ctx context.Context, draft models.InstallRequestDraft) (string, error) {
	requestNo, err := s.client.CreateInstallRequest(ctx, draft)
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "install request created", "request_no", requestNo, "customer", draft.CustomerCode)
	return requestNo, nil
}

// List returns install requests, optionally filtered by status on the
// server side.
func (s *RequestService) List(ctx context.Context, status string) ([]models.InstallRequest, error) {
	return s.client.InstallRequests(ctx, status)
}

// Cancel cancels a pending install request.
func (s *RequestService) Cancel(ctx context.Context, requestNo string) error {
	if err := s.client.CancelInstallRequest(ctx, requestNo); err != nil {
		return err
	}
	s.log.Info(ctx, "install request cancelled", "request_no", requestNo)
	return nil
}

// CompletionProcessor returns a scan.Processor that completes the given
// request with the first scanned barcode. Driving it through a
// scan.Session gives request completion the same single-flight guarantee
// as inventory verification.
func (s *RequestService) CompletionProcessor(requestNo string) scan.Processor {
	return &completionProcessor{svc: s, requestNo: requestNo}
}

type completionProcessor struct {
	svc       *RequestService
	requestNo string
}

func (p *completionProcessor) Process(ctx context.Context, payload string) (scan.Outcome, error) {
	if err := p.svc.client.CompleteInstallRequest(ctx, payload, p.requestNo); err != nil {
		return scan.OutcomeFailed, err
	}
	p.svc.log.Info(ctx, "install request completed", "request_no", p.requestNo, "barcode", payload)
	return scan.OutcomeVerified, nil
}

// FilterRequests returns the requests whose request number or customer
// name contains query case-insensitively, preserving order.
func FilterRequests(requests []models.InstallRequest, query string) []models.InstallRequest {
	if query == "" {
		return append([]models.InstallRequest(nil), requests...)
	}
	lower := strings.ToLower(query)
	result := make([]models.InstallRequest, 0, len(requests))
	for _, r := range requests {
		if strings.Contains(strings.ToLower(r.RequestNo), lower) ||
			strings.Contains(strings.ToLower(r.CustomerName), lower) {
			result = append(result, r)
		}
	}
	return result
}
