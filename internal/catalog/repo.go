package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kirtlelatino/store-api/pkg/db/models"
)

// listingCap bounds unfiltered catalog reads.
const listingCap = 1000

// Repository exposes product persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// InsertIgnoringDuplicates persists the products, skipping rows whose name
// already exists. Safe to run concurrently thanks to the unique name index.
func (r *Repository) InsertIgnoringDuplicates(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&products).Error
}

// Count returns the number of catalog rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

// List returns products, optionally filtered by exact category match.
func (r *Repository) List(ctx context.Context, category string) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).Limit(listingCap)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
