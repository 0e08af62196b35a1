package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/api/middleware"
	"github.com/amirulhakim/spicebite-backend/api/responses"
	"github.com/amirulhakim/spicebite-backend/api/validators"
	"github.com/amirulhakim/spicebite-backend/internal/cart"
	"github.com/amirulhakim/spicebite-backend/internal/catalog"
	"github.com/amirulhakim/spicebite-backend/pkg/config"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// GetCart serves the session's current cart.
func GetCart(store *cart.Store, delivery config.DeliveryConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := sessionFromRequest(store, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(session, delivery))
	}
}

// AddCartItem adds one unit of a dish to the cart.
func AddCartItem(store *cart.Store, menu catalog.Service, delivery config.DeliveryConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if menu == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		session, err := sessionFromRequest(store, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := menu.Get(r.Context(), payload.FoodItemID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session.AddItem(*item)
		responses.WriteSuccess(w, newCartResponse(session, delivery))
	}
}

// SetCartItemQuantity pins a cart line to an exact quantity. Zero removes
// the line.
func SetCartItemQuantity(store *cart.Store, delivery config.DeliveryConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := sessionFromRequest(store, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		foodItemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart item id must be an integer"))
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session.SetQuantity(foodItemID, payload.Quantity)
		responses.WriteSuccess(w, newCartResponse(session, delivery))
	}
}

func sessionFromRequest(store *cart.Store, r *http.Request) (*cart.Session, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable")
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}
	return store.Get(sessionID), nil
}

type addCartItemRequest struct {
	FoodItemID int64 `json:"food_item_id" validate:"required,min=1"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

type cartLineResponse struct {
	FoodItemID int64           `json:"food_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type cartResponse struct {
	Items               []cartLineResponse `json:"items"`
	Total               decimal.Decimal    `json:"total"`
	FreeDelivery        bool               `json:"free_delivery"`
	FreeDeliveryMinimum decimal.Decimal    `json:"free_delivery_minimum"`
}

func newCartResponse(session *cart.Session, delivery config.DeliveryConfig) cartResponse {
	lines := session.Lines()
	items := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		items = append(items, cartLineResponse{
			FoodItemID: line.FoodItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			Subtotal:   line.Price.Mul(qty),
		})
	}
	total := session.Total()
	minimum := delivery.FreeDeliveryMinimum()
	return cartResponse{
		Items:               items,
		Total:               total,
		FreeDelivery:        total.GreaterThanOrEqual(minimum),
		FreeDeliveryMinimum: minimum,
	}
}
