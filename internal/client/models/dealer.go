package models

// Dealer is a sales point the logged-in user is allowed to work with.
// Rows are replaced wholesale on each sync and never edited locally.
type Dealer struct {
	DealerCode string `json:"dealer_code"`
	Name       string `json:"name"`

	// OwnerTag is the username of the operator who synced the row.
	// It is local bookkeeping only and never travels over the wire.
	OwnerTag string `json:"-"`
}
