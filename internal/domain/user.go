package domain

const (
	RoleSeeker  = "user"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// User is the record the backend hands back at login. Only role and id are
// load-bearing for the engine; the rest is display data cached for the UI.
type User struct {
	ID    string `json:"user_id"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
