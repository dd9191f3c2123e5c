package models

// Customer is a customer location belonging to a dealer. Same wholesale
// replace-on-sync lifecycle as Dealer; local-only customers never exist.
type Customer struct {
	CustomerCode string `json:"customer_code"`
	DealerCode   string `json:"dealer_code"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	RegionCode   string `json:"region_code"`

	// UpdatedAt is supplied by the server. It is persisted but not yet
	// used locally; sync stays full-replace.
	UpdatedAt string `json:"updated_at"`

	OwnerTag string `json:"-"`
}
