package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kirtlelatino/store-api/pkg/db/models"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
)

// Service defines the catalog behavior needed by the controllers.
type Service interface {
	EnsureSeeded(ctx context.Context) error
	List(ctx context.Context, category string) ([]*ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
}

type repository interface {
	InsertIgnoringDuplicates(ctx context.Context, products []models.Product) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo repository
}

// NewService constructs a catalog service over the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo}, nil
}

// EnsureSeeded inserts the fixed seed catalog when the store is empty. The
// insert ignores duplicate names, so two racing boots cannot double-seed.
func (s *service) EnsureSeeded(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count products")
	}
	if count > 0 {
		return nil
	}
	if err := s.repo.InsertIgnoringDuplicates(ctx, seedProducts()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed products")
	}
	return nil
}

func (s *service) List(ctx context.Context, category string) ([]*ProductDTO, error) {
	products, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	dtos := make([]*ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, FromModel(&products[i]))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return FromModel(product), nil
}
