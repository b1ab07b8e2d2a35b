package server

import (
	"commons/internal/models"
	"commons/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateGoodsRequest is the payload for adding a catalog item.
type CreateGoodsRequest struct {
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
	Price        int    `json:"price"`
}

// CartItemRequest is the payload for setting a cart line's quantity.
type CartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetGoodsList returns the goods catalog
func (s *Server) GetGoodsList(c *fiber.Ctx) error {
	page := parsePagination(c)

	goods, err := s.goodsService.ListGoods(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"goods":  goods,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// GetGoodsItem returns a single catalog item
func (s *Server) GetGoodsItem(c *fiber.Ctx) error {
	goodsID, err := paramUint(c, "goodsId")
	if err != nil {
		return nil
	}

	goods, err := s.goodsService.GetGoods(c.UserContext(), goodsID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(goods)
}

// CreateGoods adds an item to the catalog
func (s *Server) CreateGoods(c *fiber.Ctx) error {
	var req CreateGoodsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	goods, err := s.goodsService.CreateGoods(c.UserContext(), service.CreateGoodsInput{
		Name:         req.Name,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		Price:        req.Price,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(goods)
}

// GetCart returns the authenticated user's cart
func (s *Server) GetCart(c *fiber.Ctx) error {
	items, err := s.goodsService.ListCart(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"items": items})
}

// PutCartItem sets the quantity of a goods item in the user's cart
func (s *Server) PutCartItem(c *fiber.Ctx) error {
	goodsID, err := paramUint(c, "goodsId")
	if err != nil {
		return nil
	}

	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.goodsService.SetCartQuantity(c.UserContext(), currentUserID(c), goodsID, req.Quantity); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cart updated"})
}

// DeleteCartItem removes a goods item from the user's cart
func (s *Server) DeleteCartItem(c *fiber.Ctx) error {
	goodsID, err := paramUint(c, "goodsId")
	if err != nil {
		return nil
	}

	if err := s.goodsService.RemoveCartItem(c.UserContext(), currentUserID(c), goodsID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cart item removed"})
}
