// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a user account in the Raptor application.
// JSON field names follow the legacy API wire format (camelCase).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Rapts []Rapt `gorm:"foreignKey:UserID" json:"rapts,omitempty"`
}

// UserSummary is the profile slice embedded in rapt and follow responses.
type UserSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Summary returns the embeddable profile view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Username: u.Username}
}
