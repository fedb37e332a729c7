package domain

import "github.com/google/uuid"

// Guest is the tenant responsible for a contract's payments.
type Guest struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullname"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
}
