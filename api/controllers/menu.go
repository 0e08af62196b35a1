package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/api/responses"
	"github.com/amirulhakim/spicebite-backend/internal/catalog"
	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// ListMenu serves the full menu catalog.
func ListMenu(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		out := make([]menuItemResponse, 0, len(items))
		for _, item := range items {
			out = append(out, newMenuItemResponse(item))
		}
		responses.WriteSuccess(w, out)
	}
}

// GetMenuItem serves a single dish.
func GetMenuItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "menu item id must be an integer"))
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newMenuItemResponse(*item))
	}
}

type menuItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Calories    int             `json:"calories"`
	SpiceLevel  int             `json:"spice_level"`
	Category    string          `json:"category"`
	ImageURL    *string         `json:"image_url,omitempty"`
}

func newMenuItemResponse(item models.FoodItem) menuItemResponse {
	return menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Calories:    item.Calories,
		SpiceLevel:  item.SpiceLevel,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
	}
}
