package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const OrderStatusPending = "pending"

// Order is an immutable checkout snapshot. PaymentID stays unset until a
// payment integration fills it in.
type Order struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index:idx_orders_user"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2);not null"`
	Status      string          `gorm:"column:status;type:text;not null;default:'pending'"`
	PaymentID   *string         `gorm:"column:payment_id"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is a snapshot of one cart line at checkout time.
type OrderItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index:idx_order_items_order"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Quantity  int       `gorm:"column:quantity;not null"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
