package cli

import (
	"context"
	"fmt"

	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/client/services"
)

// Dealers lists the cached dealers of the logged-in user. Reads never touch
// the network; 'sync' refreshes the cache.
func (a *App) Dealers(ctx context.Context) error {
	dealers, err := a.catalog.Dealers(ctx, a.user.Username)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if len(dealers) == 0 {
		fmt.Println("No dealers in the local cache; run 'sync' first")
		return nil
	}
	for _, d := range dealers {
		fmt.Printf("%-12s %s\n", d.DealerCode, d.Name)
	}
	return nil
}

// Customers lists one dealer's cached customers.
func (a *App) Customers(ctx context.Context, dealerCode string) error {
	customers, err := a.catalog.CustomersFor(ctx, a.user.Username, dealerCode)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	printCustomers(customers)
	return nil
}

// Find filters one dealer's cached customers by name or customer code.
func (a *App) Find(ctx context.Context, dealerCode, query string) error {
	customers, err := a.catalog.CustomersFor(ctx, a.user.Username, dealerCode)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	printCustomers(services.FilterCustomers(customers, query))
	return nil
}

func printCustomers(customers []models.Customer) {
	if len(customers) == 0 {
		fmt.Println("No customers")
		return
	}
	for _, c := range customers {
		fmt.Printf("%-12s %-30s %s\n", c.CustomerCode, c.Name, c.Address)
	}
}
