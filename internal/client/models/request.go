package models

// InstallRequest is an equipment installation request as reported by the
// server. The client never stores these; lists are fetched on demand.
type InstallRequest struct {
	RequestNo           string `json:"request_no"`
	CustomerCode        string `json:"customer_code"`
	CustomerName        string `json:"customer_name"`
	DealerCode          string `json:"dealer_code"`
	TypeCode            string `json:"type_code"`
	MaterialDescription string `json:"material_description"`
	Note                string `json:"note"`
	Status              string `json:"status"`
	CreatedAt           string `json:"created_at"`
}

// InstallRequestDraft is the payload for creating a new install request.
type InstallRequestDraft struct {
	CustomerCode        string `json:"customer_code"`
	DealerCode          string `json:"dealer_code"`
	TypeCode            string `json:"type_code"`
	MaterialDescription string `json:"material_description"`
	Note                string `json:"note"`
	Username            string `json:"username"`
}
