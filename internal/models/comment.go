package models

import (
	"time"
)

// Comment belongs to a post and has its own author. Both edges drive its
// flags: IsActive follows the author's account lifecycle, IsHidden follows
// the parent post's hide state.
type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content   string    `gorm:"not null" json:"content"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsHidden  bool      `gorm:"not null;default:false" json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
