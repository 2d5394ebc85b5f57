package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog listing. The unique index on name doubles as the
// guard that keeps concurrent seeding from duplicating the catalog.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name        string          `gorm:"column:name;type:text;not null;uniqueIndex:idx_products_name"`
	Description string          `gorm:"column:description;type:text;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Category    string          `gorm:"column:category;type:text;not null;index:idx_products_category"`
	ImageURL    string          `gorm:"column:image_url;type:text;not null"`
	Features    []string        `gorm:"column:features;serializer:json"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
