// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a board member account.
//
// IsActive and PendingDeletion are the two lifecycle flags: IsActive is the
// soft activation axis mirrored onto the user's posts and comments, and
// PendingDeletion marks an armed deferred hard deletion. There is no
// soft-delete column; account deletion removes the row.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"unique;not null" json:"username"`
	Password        string    `gorm:"not null" json:"-"`
	DisplayName     string    `gorm:"not null" json:"display_name"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	PendingDeletion bool      `gorm:"not null;default:false" json:"pending_deletion"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Posts           []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
