package repository

import (
	"context"
	"errors"

	"commons/internal/models"

	"gorm.io/gorm"
)

// GoodsRepository defines persistence operations for the goods catalog.
type GoodsRepository interface {
	Create(ctx context.Context, goods *models.Goods) error
	GetByID(ctx context.Context, id uint) (*models.Goods, error)
	List(ctx context.Context, limit, offset int) ([]models.Goods, error)
	Update(ctx context.Context, goods *models.Goods) error
	Delete(ctx context.Context, id uint) error
}

// CartRepository defines persistence operations for per-user cart items.
type CartRepository interface {
	Upsert(ctx context.Context, userID, goodsID uint, quantity int) error
	ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	Remove(ctx context.Context, userID, goodsID uint) error
}

type goodsRepository struct {
	db *gorm.DB
}

// NewGoodsRepository returns a new GoodsRepository implementation.
func NewGoodsRepository(db *gorm.DB) GoodsRepository {
	return &goodsRepository{db: db}
}

func (r *goodsRepository) Create(ctx context.Context, goods *models.Goods) error {
	if err := r.db.WithContext(ctx).Create(goods).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Goods already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *goodsRepository) GetByID(ctx context.Context, id uint) (*models.Goods, error) {
	var goods models.Goods
	if err := r.db.WithContext(ctx).First(&goods, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Goods", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &goods, nil
}

func (r *goodsRepository) List(ctx context.Context, limit, offset int) ([]models.Goods, error) {
	var goods []models.Goods
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&goods).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return goods, nil
}

func (r *goodsRepository) Update(ctx context.Context, goods *models.Goods) error {
	if err := r.db.WithContext(ctx).Save(goods).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *goodsRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Goods{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository returns a new CartRepository implementation.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Upsert(ctx context.Context, userID, goodsID uint, quantity int) error {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND goods_id = ?", userID, goodsID).
		First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, GoodsID: goodsID, Quantity: quantity}
		if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	case err != nil:
		return models.NewInternalError(err)
	}

	item.Quantity = quantity
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Goods").
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, goodsID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND goods_id = ?", userID, goodsID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
