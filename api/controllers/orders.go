package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/api/responses"
	"github.com/amirulhakim/spicebite-backend/internal/orders"
	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// ListOrders serves the viewer's order history: own orders for signed-in
// customers, the latest storewide orders for anonymous visitors.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}
		list, err := svc.ListForViewer(r.Context(), viewerID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		out := make([]orderResponse, 0, len(list))
		for i := range list {
			out = append(out, newOrderResponse(&list[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

// GetOrder serves a single order with its line items.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "order id must be a uuid"))
			return
		}
		order, err := svc.Get(r.Context(), id, viewerID(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newOrderResponse(order))
	}
}

type orderItemResponse struct {
	FoodItemID int64           `json:"food_item_id"`
	FoodName   string          `json:"food_name"`
	FoodPrice  decimal.Decimal `json:"food_price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type orderResponse struct {
	ID              uuid.UUID           `json:"id"`
	Reference       string              `json:"reference"`
	CustomerName    string              `json:"customer_name"`
	DeliveryAddress string              `json:"delivery_address"`
	City            string              `json:"city"`
	PaymentMethod   string              `json:"payment_method"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	StatusBadge     string              `json:"status_badge"`
	Items           []orderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
}

func newOrderResponse(order *models.Order) orderResponse {
	if order == nil {
		return orderResponse{}
	}
	return orderResponse{
		ID:              order.ID,
		Reference:       "Order #" + order.ID.String()[:8],
		CustomerName:    order.CustomerName,
		DeliveryAddress: order.DeliveryAddress,
		City:            order.City,
		PaymentMethod:   string(order.PaymentMethod),
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		StatusBadge:     order.Status.Badge(),
		Items:           newOrderItemResponses(order.Items),
		CreatedAt:       order.CreatedAt,
	}
}
