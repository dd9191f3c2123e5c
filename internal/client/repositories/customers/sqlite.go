package customers

import (
	"context"
	"fmt"

	"github.com/fieldassets/fieldassets/internal/client/models"
	"github.com/fieldassets/fieldassets/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceForOwner removes all of ownerTag's customer rows and inserts the
// given list. Other owners' rows are untouched.
func (r *SQLiteRepository) ReplaceForOwner(ctx context.Context, ownerTag string, customers []models.Customer) error {
	if _, err := r.db.ExecContext(ctx, `delete from customers where owner_tag=?`, ownerTag); err != nil {
		return fmt.Errorf("failed to clear customers: %w", err)
	}
	for _, c := range customers {
		_, err := r.db.ExecContext(ctx,
			`insert into customers (customer_code, dealer_code, owner_tag, name, address, region_code, updated_at)
			 values (?, ?, ?, ?, ?, ?, ?)`,
			c.CustomerCode, c.DealerCode, ownerTag, c.Name, c.Address, c.RegionCode, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.CustomerCode, err)
		}
	}
	return nil
}

// ListByOwnerAndDealer returns ownerTag's customers for one dealer, ordered
// by name ascending.
func (r *SQLiteRepository) ListByOwnerAndDealer(ctx context.Context, ownerTag, dealerCode string) ([]models.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`select customer_code, dealer_code, owner_tag, name, address, region_code, updated_at
		 from customers where owner_tag=? and dealer_code=? order by name asc`,
		ownerTag, dealerCode)
	if err != nil {
		return nil, fmt.Errorf("failed to select customers: %w", err)
	}
	defer rows.Close()

	var result []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.CustomerCode, &c.DealerCode, &c.OwnerTag, &c.Name, &c.Address, &c.RegionCode, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
