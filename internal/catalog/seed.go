package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/kirtlelatino/store-api/pkg/db/models"
)

const (
	rankImageURL       = "https://images.unsplash.com/photo-1524685794168-52985e79c1f8?crop=entropy&cs=srgb&fm=jpg&q=85"
	kitImageURL        = "https://images.unsplash.com/photo-1697479665524-3e06cf37b2b7?crop=entropy&cs=srgb&fm=jpg&q=85"
	protectionImageURL = "https://images.unsplash.com/photo-1697479670670-d2a299df749c?crop=entropy&cs=srgb&fm=jpg&q=85"
	coinsImageURL      = "https://images.unsplash.com/photo-1587573089734-09cb69c0f2b4?crop=entropy&cs=srgb&fm=jpg&q=85"
)

// seedProducts is the fixed initial catalog of the game server shop.
func seedProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Rango VIP",
			Description: "Acceso completo a comandos VIP, kit exclusivo y beneficios especiales",
			Price:       decimal.NewFromFloat(9.99),
			Category:    "rangos",
			ImageURL:    rankImageURL,
			Features:    []string{"Kit VIP mensual", "Comandos especiales", "Chat colorido", "Prioridad en el servidor"},
		},
		{
			Name:        "Rango VIP+",
			Description: "Todos los beneficios VIP + acceso a zonas exclusivas y más comandos",
			Price:       decimal.NewFromFloat(19.99),
			Category:    "rangos",
			ImageURL:    rankImageURL,
			Features:    []string{"Todo del VIP", "Comando /fly", "Homes adicionales", "Acceso a zonas VIP+"},
		},
		{
			Name:        "Rango ELITE",
			Description: "El rango más exclusivo con todos los privilegios del servidor",
			Price:       decimal.NewFromFloat(39.99),
			Category:    "rangos",
			ImageURL:    rankImageURL,
			Features:    []string{"Todos los comandos", "Kits ilimitados", "Crear warps", "Moderación básica"},
		},
		{
			Name:        "Kit Guerrero",
			Description: "Equipamiento completo para batalla con armadura de diamante",
			Price:       decimal.NewFromFloat(4.99),
			Category:    "kits",
			ImageURL:    kitImageURL,
			Features:    []string{"Armadura de diamante", "Espada encantada", "Pociones de curación", "Comida"},
		},
		{
			Name:        "Kit Constructor",
			Description: "Herramientas y materiales para grandes construcciones",
			Price:       decimal.NewFromFloat(7.99),
			Category:    "kits",
			ImageURL:    kitImageURL,
			Features:    []string{"Herramientas de diamante", "Bloques variados", "Redstone", "Decoraciones"},
		},
		{
			Name:        "Protección Premium",
			Description: "Protege tu base con la máxima seguridad disponible",
			Price:       decimal.NewFromFloat(12.99),
			Category:    "protecciones",
			ImageURL:    protectionImageURL,
			Features:    []string{"Área 200x200", "Protección total", "Agregar miembros", "Anti-grief"},
		},
		{
			Name:        "Monedas del Servidor",
			Description: "Moneda virtual para comprar en tiendas del servidor",
			Price:       decimal.NewFromFloat(1.99),
			Category:    "monedas",
			ImageURL:    coinsImageURL,
			Features:    []string{"1000 monedas", "Uso inmediato", "No expiran", "Transferibles"},
		},
	}
}
