package models

import (
	"time"
)

// Like records that a user liked a rapt. Row existence is the source of
// truth for "liked"; the combination of UserID and RaptID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_rapt" json:"userId"`
	RaptID    uint      `gorm:"not null;uniqueIndex:idx_user_rapt" json:"raptId"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Rapt *Rapt `gorm:"foreignKey:RaptID" json:"-"`
}
