package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/client/scan"
)

// Requests lists install requests, optionally filtered by status.
func (a *App) Requests(ctx context.Context, status string) error {
	requests, err := a.requests.List(ctx, status)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if len(requests) == 0 {
		fmt.Println("No install requests")
		return nil
	}
	for _, r := range requests {
		fmt.Printf("%-14s %-10s %-30s %s\n", r.RequestNo, r.Status, r.CustomerName, r.MaterialDescription)
	}
	return nil
}

// NewRequest interactively files an install request and prints the
// server-assigned request number.
func (a *App) NewRequest(ctx context.Context) error {
	customerCode, err := getSimpleText(a.reader, "Customer code", os.Stdout)
	if err != nil {
		return err
	}
	dealerCode, err := getSimpleText(a.reader, "Dealer code", os.Stdout)
	if err != nil {
		return err
	}
	typeCode, err := getSimpleText(a.reader, "Equipment type code", os.Stdout)
	if err != nil {
		return err
	}
	material, err := getSimpleText(a.reader, "Material description", os.Stdout)
	if err != nil {
		return err
	}
	note, err := GetMultiline(a.reader, "Note", os.Stdout)
	if err != nil {
		return err
	}

	requestNo, err := a.requests.Create(ctx, models.InstallRequestDraft{
		CustomerCode:        customerCode,
		DealerCode:          dealerCode,
		TypeCode:            typeCode,
		MaterialDescription: material,
		Note:                note,
		Username:            a.user.Username,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Println("Request created:", requestNo)
	return nil
}

// Complete closes an install request by scanning the installed equipment's
// barcode. The scan runs through a session, so duplicate decode events of
// one physical scan produce a single completion call.
func (a *App) Complete(ctx context.Context, requestNo string) error {
	session := scan.NewSession(newConsoleCamera(os.Stdout), a.requests.CompletionProcessor(requestNo), a.log)
	return a.runScanSession(ctx, session, func() bool {
		fmt.Println("Request completed:", requestNo)
		return false
	})
}

// CancelRequest cancels a pending install request.
func (a *App) CancelRequest(ctx context.Context, requestNo string) error {
	if err := a.requests.Cancel(ctx, requestNo); err != nil {
		fmt.Println("Error:", err)
		return err
	}
	fmt.Println("Request cancelled:", requestNo)
	return nil
}
