package controllers

import (
	"net/http"
	"strings"

	"github.com/kirtlelatino/store-api/api/responses"
	"github.com/kirtlelatino/store-api/api/validators"
	"github.com/kirtlelatino/store-api/internal/catalog"
	pkgerrors "github.com/kirtlelatino/store-api/pkg/errors"
	"github.com/kirtlelatino/store-api/pkg/logger"
)

// ProductsList returns the catalog, optionally filtered by category.
func ProductsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		category := strings.TrimSpace(r.URL.Query().Get("category"))

		products, err := svc.List(r.Context(), category)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, products)
	}
}

// ProductsGet returns a single product by id.
func ProductsGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := validators.ParseUUIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, product)
	}
}
