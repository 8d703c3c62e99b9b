package employee

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

type Employee struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	Avatar string
	Active bool
	// PinHash is the bcrypt hash of the optional security PIN. Empty when
	// no PIN is set; never exposed through the API.
	PinHash string
}
