package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/kirtlelatino/store-api/pkg/db/models"
)

// CartItemDTO is one cart line on the wire.
type CartItemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CartDTO is the cart transport shape.
type CartDTO struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	Items     []CartItemDTO `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func FromModel(c *models.Cart) *CartDTO {
	if c == nil {
		return nil
	}
	items := make([]CartItemDTO, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemDTO{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &CartDTO{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
