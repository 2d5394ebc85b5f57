package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kirtlelatino/store-api/pkg/db/models"
)

// OrderItemDTO is one snapshot line on the wire.
type OrderItemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderDTO is the order transport shape.
type OrderDTO struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Items       []OrderItemDTO  `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	PaymentID   *string         `json:"payment_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &OrderDTO{
		ID:          o.ID,
		UserID:      o.UserID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		PaymentID:   o.PaymentID,
		CreatedAt:   o.CreatedAt,
	}
}
