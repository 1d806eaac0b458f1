package models

import (
	"time"
)

// Follow is a directed follow edge: UserID follows FollowingID.
// Nothing prevents a self-follow and the followee is not required to
// exist; both match the legacy API behavior.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	FollowingID uint      `gorm:"not null;index" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`

	User      *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Following *User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}
