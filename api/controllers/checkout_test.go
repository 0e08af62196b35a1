package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/api/middleware"
	"github.com/amirulhakim/spicebite-backend/internal/cart"
	checkoutsvc "github.com/amirulhakim/spicebite-backend/internal/checkout"
	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

type stubCheckout struct {
	result *checkoutsvc.SubmitResult
	err    error
	calls  int
}

func (s *stubCheckout) Submit(context.Context, *cart.Session) (*checkoutsvc.SubmitResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func checkoutTestRouter(store *cart.Store, svc checkoutsvc.Service) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test"})
	r := chi.NewRouter()
	r.Get("/checkout/form", GetCheckoutForm(store, logg))
	r.Put("/checkout/form", SaveCheckoutForm(store, logg))
	r.Post("/checkout", SubmitCheckout(store, svc, logg))
	return r
}

func completedOrder() *checkoutsvc.SubmitResult {
	id := uuid.New()
	order := &models.Order{
		ID:            id,
		CustomerName:  "Siti Aminah",
		PaymentMethod: enums.PaymentMethodCash,
		TotalAmount:   decimal.RequireFromString("57.80"),
		Status:        enums.OrderStatusPending,
		Items: []models.OrderItem{
			{FoodItemID: 1, FoodName: "Dragon's Breath Noodles", FoodPrice: decimal.RequireFromString("28.90"), Quantity: 2, Subtotal: decimal.RequireFromString("57.80")},
		},
	}
	reference := "Order #" + id.String()[:8]
	return &checkoutsvc.SubmitResult{
		Order:     order,
		Reference: reference,
		Message:   reference + " confirmed. " + enums.PaymentMethodCash.SuccessMessage(),
	}
}

func TestSubmitCheckout_Created(t *testing.T) {
	store := cart.NewStore()
	svc := &stubCheckout{result: completedOrder()}
	router := checkoutTestRouter(store, svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(nil))
	req = req.WithContext(middleware.WithSessionID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data submitResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(envelope.Data.Reference, "Order #") {
		t.Fatalf("unexpected reference %q", envelope.Data.Reference)
	}
	if envelope.Data.Status != string(enums.OrderStatusPending) {
		t.Fatalf("unexpected status %q", envelope.Data.Status)
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("expected one line item, got %d", len(envelope.Data.Items))
	}
	if svc.calls != 1 {
		t.Fatalf("expected a single submit call, got %d", svc.calls)
	}
}

func TestSubmitCheckout_BodyUpdatesFormFirst(t *testing.T) {
	store := cart.NewStore()
	svc := &stubCheckout{result: completedOrder()}
	router := checkoutTestRouter(store, svc)
	sessionID := uuid.NewString()

	payload := map[string]any{
		"name":           "Siti Aminah",
		"email":          "siti@example.com",
		"address":        "12 Jalan Merdeka",
		"city":           "Kuala Lumpur",
		"payment_method": "touchngo",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
	req = req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	form := store.Get(sessionID).Form()
	if form.PaymentMethod != enums.PaymentMethodTouchNGo {
		t.Fatalf("expected form updated before submit, got %s", form.PaymentMethod)
	}
}

func TestSubmitCheckout_SubmissionFailureMapsTo502(t *testing.T) {
	store := cart.NewStore()
	svc := &stubCheckout{err: pkgerrors.New(pkgerrors.CodeOrderSubmission, "there was an error placing your order, please try again")}
	router := checkoutTestRouter(store, svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(nil))
	req = req.WithContext(middleware.WithSessionID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeOrderSubmission) {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
	if envelope.Error.Message != "there was an error placing your order, please try again" {
		t.Fatalf("unexpected public message %q", envelope.Error.Message)
	}
}

func TestSubmitCheckout_ConflictWhileInFlight(t *testing.T) {
	store := cart.NewStore()
	svc := &stubCheckout{err: pkgerrors.New(pkgerrors.CodeConflict, "an order submission is already in progress")}
	router := checkoutTestRouter(store, svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(nil))
	req = req.WithContext(middleware.WithSessionID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSaveCheckoutForm_RoundTrips(t *testing.T) {
	store := cart.NewStore()
	router := checkoutTestRouter(store, &stubCheckout{})
	sessionID := uuid.NewString()

	payload := map[string]any{
		"name":           "Siti Aminah",
		"payment_method": "card",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/checkout/form", bytes.NewReader(body))
	req = req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/checkout/form", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope struct {
		Data formResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Name != "Siti Aminah" || envelope.Data.PaymentMethod != "card" {
		t.Fatalf("unexpected form %+v", envelope.Data)
	}
}

func TestSaveCheckoutForm_RejectsUnknownPaymentMethod(t *testing.T) {
	store := cart.NewStore()
	router := checkoutTestRouter(store, &stubCheckout{})

	req := httptest.NewRequest(http.MethodPut, "/checkout/form", strings.NewReader(`{"payment_method":"bitcoin"}`))
	req = req.WithContext(middleware.WithSessionID(req.Context(), uuid.NewString()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
