package cli

import (
	"context"
	"fmt"
)

// Sync runs a full refresh of the logged-in user's local catalog. On any
// failure the cache is left exactly as it was.
func (a *App) Sync(ctx context.Context) error {
	fmt.Println("Syncing...")
	result, err := a.syncSvc.RunFullSync(ctx, a.user.Username)
	if err != nil {
		fmt.Println("Sync failed, local data unchanged:", err)
		return err
	}
	fmt.Printf("Synced %d dealers, %d customers\n", result.DealerCount, result.CustomerCount)
	return nil
}
