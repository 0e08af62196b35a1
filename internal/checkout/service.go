package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/internal/cart"
	"github.com/amirulhakim/spicebite-backend/internal/notifications"
	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
	"github.com/amirulhakim/spicebite-backend/pkg/metrics"
)

// IdentityResolver maps the request context to an optional user id. It never
// fails: a missing or invalid identity simply yields nil and the order is
// recorded as anonymous.
type IdentityResolver interface {
	Resolve(ctx context.Context) *uuid.UUID
}

type menuReader interface {
	FindByIDs(ctx context.Context, ids []int64) ([]models.FoodItem, error)
}

type ordersWriter interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
}

// SubmitResult carries the persisted order and the customer-facing
// confirmation copy.
type SubmitResult struct {
	Order     *models.Order `json:"order"`
	Reference string        `json:"reference"`
	Message   string        `json:"message"`
}

// Service runs the order submission transaction.
type Service interface {
	Submit(ctx context.Context, session *cart.Session) (*SubmitResult, error)
}

type service struct {
	menu     menuReader
	orders   ordersWriter
	identity IdentityResolver
	sink     notifications.Sink
	metrics  *metrics.OrderMetrics
	logg     *logger.Logger
}

// NewService builds a checkout service with the required dependencies.
func NewService(menu menuReader, orders ordersWriter, identity IdentityResolver, sink notifications.Sink, m *metrics.OrderMetrics, logg *logger.Logger) (Service, error) {
	if menu == nil {
		return nil, fmt.Errorf("menu reader required")
	}
	if orders == nil {
		return nil, fmt.Errorf("orders writer required")
	}
	if identity == nil {
		return nil, fmt.Errorf("identity resolver required")
	}
	if sink == nil {
		return nil, fmt.Errorf("notification sink required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		menu:     menu,
		orders:   orders,
		identity: identity,
		sink:     sink,
		metrics:  m,
		logg:     logg,
	}, nil
}

// Submit places the order for the given session. Only one submission per
// session runs at a time; a second trigger while one is in flight returns a
// conflict and has no side effects.
//
// The header insert and the line item insert are two independent writes.
// When the second write fails the header is left in place and the customer
// is told to retry; reconciliation of such headers is an offline concern.
func (s *service) Submit(ctx context.Context, session *cart.Session) (*SubmitResult, error) {
	if session == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout session required")
	}
	if !session.BeginSubmit() {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "an order submission is already in progress")
	}
	defer session.EndSubmit()

	started := time.Now()
	outcome := "failure"
	defer func() {
		s.metrics.ObserveDuration(outcome, time.Since(started))
	}()

	lines := session.Lines()
	if len(lines) == 0 {
		s.metrics.IncFailure("validate")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "your cart is empty")
	}
	form := session.Form()
	if err := form.Validate(); err != nil {
		s.metrics.IncFailure("validate")
		return nil, err
	}

	userID := s.identity.Resolve(ctx)
	if userID != nil {
		ctx = s.logg.WithUserID(ctx, userID.String())
	}

	items, total, err := s.snapshot(ctx, lines)
	if err != nil {
		s.metrics.IncFailure("snapshot")
		s.publishFailure(ctx)
		return nil, pkgerrors.Wrap(pkgerrors.CodeOrderSubmission, err, "snapshotting cart against menu")
	}

	order := buildOrder(userID, form, total)
	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		s.metrics.IncFailure("create_order")
		s.publishFailure(ctx)
		return nil, pkgerrors.Wrap(pkgerrors.CodeOrderSubmission, err, "creating order header")
	}
	ctx = s.logg.WithOrderID(ctx, created.ID.String())

	for i := range items {
		items[i].OrderID = created.ID
	}
	if err := s.orders.CreateOrderItems(ctx, items); err != nil {
		// The header stays behind without its items. The customer sees the
		// uniform retry message and a fresh submission writes a new header.
		s.metrics.IncFailure("create_order_items")
		s.logg.Warn(ctx, "order header persisted without line items")
		s.publishFailure(ctx)
		return nil, pkgerrors.Wrap(pkgerrors.CodeOrderSubmission, err, "creating order items")
	}
	created.Items = items

	reference := orderReference(created.ID)
	message := fmt.Sprintf("%s confirmed. %s", reference, form.PaymentMethod.SuccessMessage())
	s.sink.Publish(ctx, notifications.Notification{
		Kind:   notifications.KindSuccess,
		Title:  "Order Placed Successfully!",
		Detail: message,
	})

	session.FinishSuccess()
	s.metrics.IncSuccess()
	outcome = "success"
	s.logg.Info(ctx, "order placed")

	return &SubmitResult{
		Order:     created,
		Reference: reference,
		Message:   message,
	}, nil
}

// snapshot re-reads the menu and copies the current name and price into the
// line items so later menu edits cannot rewrite order history. The header
// total is derived from the same snapshot.
func (s *service) snapshot(ctx context.Context, lines []cart.Line) ([]models.OrderItem, decimal.Decimal, error) {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.FoodItemID)
	}
	menuItems, err := s.menu.FindByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	byID := make(map[int64]models.FoodItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	items := make([]models.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		menuItem, ok := byID[line.FoodItemID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("menu item %d is no longer available", line.FoodItemID)
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal := menuItem.Price.Mul(qty)
		items = append(items, models.OrderItem{
			ID:         uuid.New(),
			FoodItemID: menuItem.ID,
			FoodName:   menuItem.Name,
			FoodPrice:  menuItem.Price,
			Quantity:   line.Quantity,
			Subtotal:   subtotal,
		})
		total = total.Add(subtotal)
	}
	return items, total, nil
}

func buildOrder(userID *uuid.UUID, form cart.CheckoutForm, total decimal.Decimal) *models.Order {
	return &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		CustomerName:    form.Name,
		CustomerEmail:   form.Email,
		CustomerPhone:   optional(form.Phone),
		DeliveryAddress: form.Address,
		City:            form.City,
		PostalCode:      optional(form.PostalCode),
		PaymentMethod:   form.PaymentMethod,
		TotalAmount:     total,
		Status:          enums.OrderStatusPending,
	}
}

func (s *service) publishFailure(ctx context.Context) {
	s.sink.Publish(ctx, notifications.Notification{
		Kind:   notifications.KindError,
		Title:  "Order Failed",
		Detail: "there was an error placing your order, please try again",
	})
}

func orderReference(id uuid.UUID) string {
	return "Order #" + id.String()[:8]
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
