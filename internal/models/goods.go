package models

import (
	"time"
)

// Goods is a catalog item. Plain CRUD, no lifecycle flags.
type Goods struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;uniqueIndex" json:"name"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Category     string    `json:"category"`
	Price        int       `gorm:"not null" json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CartItem links a user to a goods item with a quantity. One row per
// user+goods pair.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_goods" json:"user_id"`
	GoodsID   uint      `gorm:"not null;uniqueIndex:idx_cart_user_goods" json:"goods_id"`
	Goods     Goods     `gorm:"foreignKey:GoodsID" json:"goods,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
