package models

import (
	"time"
)

// Rapt is a micro-blog post.
//
// Likes is a denormalized counter kept in sync with the rows of the
// likes table; it is only ever written inside the like-toggle
// transaction (see repository.RaptRepository.ToggleLike).
type Rapt struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"dateCreated"`
	UpdatedAt time.Time `json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
