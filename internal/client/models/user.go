package models

// User is the logged-in operator as returned by the login endpoint.
// The credential itself is opaque; only identity fields are kept.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UserCode string `json:"user_code"`
}
