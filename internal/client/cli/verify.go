package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fieldassets/fieldassets/internal/client/scan"
	"github.com/fieldassets/fieldassets/internal/client/services"
)

// Verify runs a scan-verification session against one customer location.
// The expected inventory is fetched fresh from the server; each line the
// operator types is one decode event. Typing "done" or an empty EOF closes
// the session.
func (a *App) Verify(ctx context.Context, customerCode string) error {
	svc := services.NewVerificationService(a.client, customerCode, a.user.UserCode, a.log)
	if err := svc.LoadInventory(ctx); err != nil {
		fmt.Println("Could not load inventory:", err)
		return err
	}

	items := svc.Inventory()
	if len(items) == 0 {
		fmt.Println("No equipment expected at this location")
		return nil
	}
	fmt.Printf("Expected equipment at %s:\n", customerCode)
	for _, item := range items {
		mark := " "
		if item.IsVerified {
			mark = "x"
		}
		fmt.Printf("  [%s] %-16s %s\n", mark, item.Barcode, item.Description)
	}

	session := scan.NewSession(newConsoleCamera(os.Stdout), svc, a.log)
	return a.runScanSession(ctx, session, func() bool {
		fmt.Printf("Verified %d of %d\n", svc.VerifiedCount(), len(svc.Inventory()))
		return svc.VerifiedCount() < len(svc.Inventory())
	})
}

// runScanSession drives one scan.Session from the terminal. onSuccess runs
// after each verified scan; returning true rearms the session for the next
// item, false ends it.
func (a *App) runScanSession(ctx context.Context, session *scan.Session, onSuccess func() bool) error {
	if err := session.Start(ctx); err != nil {
		fmt.Println("Could not start scanner:", err)
		return err
	}
	fmt.Println("Scan barcodes (type and press Enter, 'done' to stop)")

	for {
		line, err := a.reader.ReadString('\n')
		payload := strings.TrimSpace(line)
		if err != nil || payload == "done" {
			session.Cancel()
			return nil
		}
		if payload == "" {
			continue
		}

		session.HandleDecode(ctx, payload)

		switch session.State() {
		case scan.StateAwaitingAck:
			fmt.Println("Scan not accepted:", session.LastErr())
			if _, err := getSimpleText(a.reader, "Press Enter to continue scanning", os.Stdout); err != nil {
				session.Cancel()
				return nil
			}
			if err := session.Acknowledge(); err != nil {
				session.Cancel()
				return err
			}
		case scan.StateIdle:
			if onSuccess != nil && onSuccess() {
				if err := session.Start(ctx); err != nil {
					fmt.Println("Could not restart scanner:", err)
					return err
				}
				continue
			}
			return nil
		}
	}
}
