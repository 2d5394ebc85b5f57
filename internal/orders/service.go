package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kirtlelatino/store-api/internal/cart"
	"github.com/kirtlelatino/store-api/internal/catalog"
	"github.com/kirtlelatino/store-api/pkg/db"
	"github.com/kirtlelatino/store-api/pkg/db/models"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
)

// Service defines the order behavior needed by the controllers.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*OrderDTO, error)
	List(ctx context.Context, userID uuid.UUID) ([]*OrderDTO, error)
}

type service struct {
	db *db.Client
}

// NewService constructs an orders service over the shared database client.
// Checkout runs its read-total-write-clear sequence inside one transaction,
// so two concurrent checkouts of the same cart cannot both convert it.
func NewService(client *db.Client) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: client}, nil
}

func (s *service) Checkout(ctx context.Context, userID uuid.UUID) (*OrderDTO, error) {
	var created *models.Order

	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		carts := cart.NewRepository(tx)
		products := catalog.NewRepository(tx)
		orders := NewRepository(tx)

		userCart, err := carts.FindByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeBusinessRule, "cart is empty")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
		}
		if len(userCart.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeBusinessRule, "cart is empty")
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(userCart.Items))
		for _, line := range userCart.Items {
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})

			product, err := products.FindByID(ctx, line.ProductID)
			if err != nil {
				// A since-deleted product contributes zero to the total.
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product price")
			}
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		order := &models.Order{
			UserID:      userID,
			Items:       items,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
		}
		if created, err = orders.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}

		if err := carts.ClearItems(ctx, userCart.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
		}
		if err := carts.Touch(ctx, userCart.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "touch cart")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return FromModel(created), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*OrderDTO, error) {
	orders, err := NewRepository(s.db.DB()).ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	dtos := make([]*OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, FromModel(&orders[i]))
	}
	return dtos, nil
}
