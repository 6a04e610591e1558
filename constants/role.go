package constants

// User roles
const (
	RoleUser  = 0
	RoleAdmin = 1
)
