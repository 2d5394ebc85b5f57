package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kirtlelatino/store-api/pkg/db/models"
)

// ProductDTO is the catalog transport shape.
type ProductDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url"`
	Features    []string        `json:"features"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Features:    features,
		CreatedAt:   p.CreatedAt,
	}
}
