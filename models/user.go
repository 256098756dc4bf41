package models

import "time"

// User is an admin account. Accounts are seeded at first boot and only ever
// mutated through the password-change endpoint.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:text;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"type:text;not null"` // argon2id hash
	Role      string    `json:"role" gorm:"type:text;not null;default:admin"`
	CreatedAt time.Time `json:"createdAt"`
}
