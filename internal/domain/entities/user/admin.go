// Package user defines the admin account entity.
package user

import "time"

// Admin is a back-office account. The password hash never serializes.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
