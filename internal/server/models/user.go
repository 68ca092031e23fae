package models

import "time"

// User is a stored credential record. PasswordHash never leaves the
// repository/service boundary; API responses carry only ID and Email.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
