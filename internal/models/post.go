package models

import (
	"time"
)

// Post is a board entry. Its identifier is an opaque UUID assigned at
// creation time.
//
// IsActive mirrors the author's account state, IsHidden is set by the
// author through hide/restore. The two axes are independent; all four
// combinations are reachable.
type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsHidden  bool      `gorm:"not null;default:false" json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
