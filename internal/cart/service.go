package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kirtlelatino/store-api/pkg/db/models"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
)

// Service defines the cart behavior needed by the controllers.
type Service interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
}

type repository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	Create(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
	CreateItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) error
	IncrementItem(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItemsByProduct(ctx context.Context, cartID, productID uuid.UUID) error
	Touch(ctx context.Context, cartID uuid.UUID) error
}

type productFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	carts    repository
	products productFinder
}

// NewService constructs a cart service with the provided dependencies.
func NewService(carts repository, products productFinder) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	return &service{carts: carts, products: products}, nil
}

func (s *service) GetOrCreate(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	cart, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FromModel(cart), nil
}

func (s *service) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	cart, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	var existing *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			existing = &cart.Items[i]
			break
		}
	}

	if existing != nil {
		if err := s.carts.IncrementItem(ctx, existing.ID, quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment cart item")
		}
	} else {
		if err := s.carts.CreateItem(ctx, cart.ID, productID, quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cart item")
		}
	}

	if err := s.carts.Touch(ctx, cart.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "touch cart")
	}
	return nil
}

func (s *service) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	// Removing a product that is not in the cart is a successful no-op.
	if err := s.carts.DeleteItemsByProduct(ctx, cart.ID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete cart items")
	}
	if err := s.carts.Touch(ctx, cart.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "touch cart")
	}
	return nil
}

func (s *service) loadOrCreate(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	cart, err = s.carts.Create(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cart")
	}
	return cart, nil
}
