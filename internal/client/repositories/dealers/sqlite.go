package dealers

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

// ReplaceForOwner removes all of ownerTag's dealer rows and inserts the
// given list. Other owners' rows are untouched.
func (r *SQLiteRepository) ReplaceForOwner(ctx context.Context, ownerTag string, dealers []models.Dealer) error {
	if _, err := r.db.ExecContext(ctx, `delete from dealers where owner_tag=?`, ownerTag); err != nil {
		return fmt.Errorf("failed to clear dealers: %w", err)
	}
	for _, d := range dealers {
		_, err := r.db.ExecContext(ctx,
			`insert into dealers (dealer_code, name, owner_tag) values (?, ?, ?)`,
			d.DealerCode, d.Name, ownerTag)
		if err != nil {
			return fmt.Errorf("failed to insert dealer %s: %w", d.DealerCode, err)
		}
	}
	return nil
}

// ListByOwner returns ownerTag's dealers ordered by name ascending.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerTag string) ([]models.Dealer, error) {
	rows, err := r.db.QueryContext(ctx,
		`select dealer_code, name, owner_tag from dealers where owner_tag=? order by name asc`, ownerTag)
	if err != nil {
		return nil, fmt.Errorf("failed to select dealers: %w", err)
	}
	defer rows.Close()

	var result []models.Dealer
	for rows.Next() {
		var d models.Dealer
		if err := rows.Scan(&d.DealerCode, &d.Name, &d.OwnerTag); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
