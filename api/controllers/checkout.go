package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/api/responses"
	"github.com/amirulhakim/spicebite-backend/api/validators"
	"github.com/amirulhakim/spicebite-backend/internal/cart"
	checkoutsvc "github.com/amirulhakim/spicebite-backend/internal/checkout"
	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// GetCheckoutForm serves the session's saved checkout form.
func GetCheckoutForm(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := sessionFromRequest(store, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newFormResponse(session.Form()))
	}
}

// SaveCheckoutForm replaces the session's checkout form. Saving never
// validates; required fields are only enforced at submission.
func SaveCheckoutForm(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := sessionFromRequest(store, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutFormRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		form, err := payload.toForm()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		session.SetForm(form)
		responses.WriteSuccess(w, newFormResponse(session.Form()))
	}
}

// SubmitCheckout places the order from the session's cart and form. A body
// with the form fields updates the form before submission, so clients can
// submit in one round trip.
func SubmitCheckout(store *cart.Store, svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}
		session, err := sessionFromRequest(store, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if r.ContentLength != 0 {
			var payload checkoutFormRequest
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			form, err := payload.toForm()
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			session.SetForm(form)
		}

		result, err := svc.Submit(r.Context(), session)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newSubmitResponse(result))
	}
}

type checkoutFormRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash card paypal touchngo"`
}

func (p checkoutFormRequest) toForm() (cart.CheckoutForm, error) {
	form := cart.CheckoutForm{
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Address:       p.Address,
		City:          p.City,
		PostalCode:    p.PostalCode,
		PaymentMethod: enums.PaymentMethodCash,
	}
	if p.PaymentMethod != "" {
		method, err := enums.ParsePaymentMethod(p.PaymentMethod)
		if err != nil {
			return cart.CheckoutForm{}, pkgerrors.New(pkgerrors.CodeValidation, "please select a payment method")
		}
		form.PaymentMethod = method
	}
	return form, nil
}

type formResponse struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method"`
}

func newFormResponse(form cart.CheckoutForm) formResponse {
	return formResponse{
		Name:          form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		Address:       form.Address,
		City:          form.City,
		PostalCode:    form.PostalCode,
		PaymentMethod: string(form.PaymentMethod),
	}
}

type submitResponse struct {
	OrderID   uuid.UUID           `json:"order_id"`
	Reference string              `json:"reference"`
	Message   string              `json:"message"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []orderItemResponse `json:"items"`
}

func newSubmitResponse(result *checkoutsvc.SubmitResult) submitResponse {
	if result == nil || result.Order == nil {
		return submitResponse{}
	}
	return submitResponse{
		OrderID:   result.Order.ID,
		Reference: result.Reference,
		Message:   result.Message,
		Status:    string(result.Order.Status),
		Total:     result.Order.TotalAmount,
		Items:     newOrderItemResponses(result.Order.Items),
	}
}

func newOrderItemResponses(items []models.OrderItem) []orderItemResponse {
	out := make([]orderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, orderItemResponse{
			FoodItemID: item.FoodItemID,
			FoodName:   item.FoodName,
			FoodPrice:  item.FoodPrice,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal,
		})
	}
	return out
}
