package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kirtlelatino/store-api/internal/catalog"
	"github.com/kirtlelatino/store-api/pkg/db/models"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
)

func newCartService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc, err := NewService(NewRepository(conn), catalog.NewRepository(conn))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, conn
}

func mustCreateProduct(t *testing.T, conn *gorm.DB, name string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Description: "test product",
		Price:       decimal.NewFromFloat(price),
		Category:    "rangos",
		ImageURL:    "https://example.com/p.jpg",
		Features:    []string{"feature"},
	}
	if err := conn.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func TestGetOrCreateReturnsEmptyCart(t *testing.T) {
	svc, _ := newCartService(t)
	userID := uuid.New()

	cart, err := svc.GetOrCreate(context.Background(), userID)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if cart.UserID != userID {
		t.Fatalf("expected cart for %s got %s", userID, cart.UserID)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}

	again, err := svc.GetOrCreate(context.Background(), userID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatal("expected the same cart on repeat calls")
	}
}

func TestAddItemMergesQuantities(t *testing.T) {
	svc, conn := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := mustCreateProduct(t, conn, "Rango VIP", 9.99)

	if err := svc.AddItem(ctx, userID, product.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddItem(ctx, userID, product.ID, 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	cart, err := svc.GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newCartService(t)

	err := svc.AddItem(context.Background(), uuid.New(), uuid.New(), 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestAddItemRefreshesUpdatedAt(t *testing.T) {
	svc, conn := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := mustCreateProduct(t, conn, "Kit Guerrero", 4.99)

	before, err := svc.GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if err := svc.AddItem(ctx, userID, product.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	after, err := svc.GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if after.UpdatedAt.Before(before.UpdatedAt) {
		t.Fatal("expected updated_at to move forward on mutation")
	}
}

func TestRemoveItemWithoutCart(t *testing.T) {
	svc, _ := newCartService(t)

	err := svc.RemoveItem(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	svc, conn := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := mustCreateProduct(t, conn, "Kit Constructor", 7.99)

	if err := svc.AddItem(ctx, userID, product.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveItem(ctx, userID, uuid.New()); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}

	cart, err := svc.GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected existing line untouched, got %d items", len(cart.Items))
	}
}

func TestRemoveItemDeletesLine(t *testing.T) {
	svc, conn := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := mustCreateProduct(t, conn, "Monedas del Servidor", 1.99)

	if err := svc.AddItem(ctx, userID, product.ID, 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveItem(ctx, userID, product.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	cart, err := svc.GetOrCreate(ctx, userID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}
}
