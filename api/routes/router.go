package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirtlelatino/store-api/api/controllers"
	"github.com/kirtlelatino/store-api/api/middleware"
	"github.com/kirtlelatino/store-api/internal/auth"
	cartsvc "github.com/kirtlelatino/store-api/internal/cart"
	"github.com/kirtlelatino/store-api/internal/catalog"
	ordersvc "github.com/kirtlelatino/store-api/internal/orders"
	"github.com/kirtlelatino/store-api/pkg/config"
	"github.com/kirtlelatino/store-api/pkg/logger"
)

// NewRouter assembles the storefront HTTP surface. Everything except the
// liveness root, auth and product reads sits behind the bearer-token guard.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	authService auth.Service,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	ordersService ordersvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/", controllers.Root())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", controllers.Root())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.AuthRegister(authService, logg))
			r.Post("/login", controllers.AuthLogin(authService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(catalogService, logg))
			r.Get("/{productID}", controllers.ProductsGet(catalogService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(cartService, logg))
				r.Post("/add", controllers.CartAddItem(cartService, logg))
				r.Delete("/remove/{productID}", controllers.CartRemoveItem(cartService, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.OrdersCheckout(ordersService, logg))
				r.Get("/", controllers.OrdersList(ordersService, logg))
			})
		})
	})

	return r
}
