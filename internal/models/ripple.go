package models

import (
	"time"
)

// Ripple is a comment on a rapt.
type Ripple struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	RaptID    uint      `gorm:"not null;index" json:"raptId"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"dateCreated"`
	UpdatedAt time.Time `json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rapt *Rapt `gorm:"foreignKey:RaptID" json:"-"`
}
