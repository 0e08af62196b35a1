package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/api/responses"
	"github.com/amirulhakim/spicebite-backend/internal/subscriptions"
	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// GetSubscriptionPlan serves the single purchasable plan.
func GetSubscriptionPlan(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscriptions service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Plan(r.Context()))
	}
}

// GetSubscription serves the signed-in customer's active subscription.
func GetSubscription(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscriptions service unavailable"))
			return
		}
		userID := viewerID(r)
		if userID == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view your subscription"))
			return
		}
		sub, err := svc.Current(r.Context(), *userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if sub == nil {
			responses.WriteSuccess(w, nil)
			return
		}
		responses.WriteSuccess(w, newSubscriptionResponse(sub))
	}
}

// Subscribe enrolls the signed-in customer in the monthly plan.
func Subscribe(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscriptions service unavailable"))
			return
		}
		userID := viewerID(r)
		if userID == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to subscribe"))
			return
		}
		sub, err := svc.Subscribe(r.Context(), *userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newSubscriptionResponse(sub))
	}
}

type subscriptionResponse struct {
	ID           uuid.UUID       `json:"id"`
	Plan         string          `json:"plan"`
	Status       string          `json:"status"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	StartedAt    time.Time       `json:"started_at"`
}

func newSubscriptionResponse(sub *models.Subscription) subscriptionResponse {
	if sub == nil {
		return subscriptionResponse{}
	}
	return subscriptionResponse{
		ID:           sub.ID,
		Plan:         string(sub.Plan),
		Status:       string(sub.Status),
		MonthlyPrice: sub.MonthlyPrice,
		StartedAt:    sub.StartedAt,
	}
}
