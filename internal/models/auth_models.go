package models

import "time"

// User represents an account that can log into the backend.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username" binding:"required"`
	FullName  *string   `json:"full_name,omitempty" db:"full_name"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
