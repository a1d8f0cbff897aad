package domain

// Guest represents a registered hotel guest
type Guest struct {
	ID             string // UUID
	FullName       string
	DocumentNumber string // unique identity document
	Email          *string
	Phone          *string
}
