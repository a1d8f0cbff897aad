package domain

// Parameter represents a keyed configuration value stored in the database
type Parameter struct {
	ID          int64
	Key         string // unique
	Value       string
	Description *string
}
