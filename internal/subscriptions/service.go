package subscriptions

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
)

// PlanBenefit is one selling point of the monthly plan.
type PlanBenefit struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Plan describes the single paid plan on offer.
type Plan struct {
	Name         string                 `json:"name"`
	Code         enums.SubscriptionPlan `json:"code"`
	MonthlyPrice decimal.Decimal        `json:"monthly_price"`
	Currency     string                 `json:"currency"`
	Benefits     []PlanBenefit          `json:"benefits"`
}

// SpicyFixPlan is the only purchasable plan.
func SpicyFixPlan() Plan {
	return Plan{
		Name:         "Spicy Fix Plan",
		Code:         enums.SubscriptionPlanSpicyFix,
		MonthlyPrice: decimal.NewFromInt(39),
		Currency:     "MYR",
		Benefits: []PlanBenefit{
			{Title: "4 Exclusive Dishes Monthly", Detail: "Curated spicy meals you won't find elsewhere"},
			{Title: "Free Delivery", Detail: "No delivery charges, ever"},
			{Title: "20% Discount on Extra Orders", Detail: "Save more when you order additional items"},
			{Title: "Pause or Cancel Anytime", Detail: "Complete flexibility, no commitments"},
			{Title: "Spice Level Customization", Detail: "Tell us your heat preference"},
			{Title: "Priority Customer Support", Detail: "Get help faster as a subscriber"},
		},
	}
}

type profileUpdater interface {
	SetSubscriptionPlan(ctx context.Context, id uuid.UUID, plan string) error
}

// Service manages enrollment in the monthly plan.
type Service interface {
	Plan(ctx context.Context) Plan
	Current(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
	Subscribe(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
}

type service struct {
	repo     Repository
	profiles profileUpdater
	now      func() time.Time
}

// NewService builds a subscriptions service with the required dependencies.
func NewService(repo Repository, profiles profileUpdater) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("subscriptions repository required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profile updater required")
	}
	return &service{repo: repo, profiles: profiles, now: time.Now}, nil
}

func (s *service) Plan(_ context.Context) Plan {
	return SpicyFixPlan()
}

// Current returns the user's active subscription, or nil when there is none.
func (s *service) Current(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view your subscription")
	}
	sub, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading subscription")
	}
	return sub, nil
}

// Subscribe enrolls the user in the monthly plan. Enrolling twice is a
// conflict, not an idempotent no-op, so the caller can surface it.
func (s *service) Subscribe(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to subscribe")
	}

	existing, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil && !stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking existing subscription")
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "you already have an active subscription")
	}

	plan := SpicyFixPlan()
	sub := &models.Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		Plan:         plan.Code,
		Status:       enums.SubscriptionStatusActive,
		MonthlyPrice: plan.MonthlyPrice,
		StartedAt:    s.now().UTC(),
	}
	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating subscription")
	}
	if err := s.profiles.SetSubscriptionPlan(ctx, userID, string(plan.Code)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating profile plan")
	}
	return created, nil
}
