package domain

// User represents a backoffice user account.
// PasswordHash is a bcrypt hash; plain passwords are never stored
type User struct {
	ID           int64
	Name         string
	Email        string // unique
	PasswordHash string
	Role         string
}
