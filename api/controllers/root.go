package controllers

import (
	"net/http"

	"github.com/kirtlelatino/store-api/api/responses"
)

// Root answers the liveness probe at the API root.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "KirtleLatino store API",
		})
	}
}
