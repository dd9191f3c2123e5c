package models

// InventoryItem is one piece of equipment the server expects to be present
// at a customer location. The expected set is fetched fresh per
// verification session and never persisted locally; IsVerified reflects
// server truth only, it is never set optimistically on the client.
type InventoryItem struct {
	Barcode      string `json:"barcode"`
	MaterialCode string `json:"material_code"`
	Description  string `json:"description"`
	EquipmentNo  string `json:"equipment_no"`
	IsVerified   bool   `json:"is_verified"`
}
