package service

import (
	"context"

	"commons/internal/models"
	"commons/internal/repository"
)

// GoodsService is plain catalog/cart CRUD. No lifecycle flags, no
// cascades.
type GoodsService struct {
	goodsRepo repository.GoodsRepository
	cartRepo  repository.CartRepository
}

type CreateGoodsInput struct {
	Name         string
	ThumbnailURL string
	Category     string
	Price        int
}

func NewGoodsService(goodsRepo repository.GoodsRepository, cartRepo repository.CartRepository) *GoodsService {
	return &GoodsService{goodsRepo: goodsRepo, cartRepo: cartRepo}
}

func (s *GoodsService) CreateGoods(ctx context.Context, in CreateGoodsInput) (*models.Goods, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if in.Price < 0 {
		return nil, models.NewValidationError("Price must not be negative")
	}

	goods := &models.Goods{
		Name:         in.Name,
		ThumbnailURL: in.ThumbnailURL,
		Category:     in.Category,
		Price:        in.Price,
	}
	if err := s.goodsRepo.Create(ctx, goods); err != nil {
		return nil, err
	}
	return goods, nil
}

func (s *GoodsService) GetGoods(ctx context.Context, id uint) (*models.Goods, error) {
	return s.goodsRepo.GetByID(ctx, id)
}

func (s *GoodsService) ListGoods(ctx context.Context, limit, offset int) ([]models.Goods, error) {
	return s.goodsRepo.List(ctx, limit, offset)
}

// SetCartQuantity upserts a cart row for the caller. Quantity must be
// positive; removing an item is a separate operation.
func (s *GoodsService) SetCartQuantity(ctx context.Context, userID, goodsID uint, quantity int) error {
	if quantity <= 0 {
		return models.NewValidationError("Quantity must be positive")
	}
	if _, err := s.goodsRepo.GetByID(ctx, goodsID); err != nil {
		return err
	}
	return s.cartRepo.Upsert(ctx, userID, goodsID, quantity)
}

func (s *GoodsService) ListCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(ctx, userID)
}

func (s *GoodsService) RemoveCartItem(ctx context.Context, userID, goodsID uint) error {
	return s.cartRepo.Remove(ctx, userID, goodsID)
}
