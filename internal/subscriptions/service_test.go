package subscriptions

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
)

type fakeRepo struct {
	active  map[uuid.UUID]*models.Subscription
	created []*models.Subscription
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{active: map[uuid.UUID]*models.Subscription{}}
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepo) Create(_ context.Context, sub *models.Subscription) (*models.Subscription, error) {
	f.created = append(f.created, sub)
	f.active[sub.UserID] = sub
	return sub, nil
}

func (f *fakeRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) (*models.Subscription, error) {
	if sub, ok := f.active[userID]; ok {
		return sub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProfiles struct {
	plans map[uuid.UUID]string
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{plans: map[uuid.UUID]string{}}
}

func (f *fakeProfiles) SetSubscriptionPlan(_ context.Context, id uuid.UUID, plan string) error {
	f.plans[id] = plan
	return nil
}

func newTestService(t *testing.T, repo Repository, profiles *fakeProfiles) Service {
	t.Helper()
	svc, err := NewService(repo, profiles)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return svc
}

func TestSubscribe_Success(t *testing.T) {
	repo := newFakeRepo()
	profiles := newFakeProfiles()
	svc := newTestService(t, repo, profiles)

	userID := uuid.New()
	sub, err := svc.Subscribe(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Plan != enums.SubscriptionPlanSpicyFix {
		t.Fatalf("expected spicy fix plan, got %s", sub.Plan)
	}
	if !sub.MonthlyPrice.Equal(decimal.NewFromInt(39)) {
		t.Fatalf("expected RM39 monthly price, got %s", sub.MonthlyPrice)
	}
	if sub.Status != enums.SubscriptionStatusActive {
		t.Fatalf("expected active status, got %s", sub.Status)
	}
	if profiles.plans[userID] != string(enums.SubscriptionPlanSpicyFix) {
		t.Fatalf("expected profile plan updated, got %q", profiles.plans[userID])
	}
}

func TestSubscribe_DoubleSubscribeConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo, newFakeProfiles())

	userID := uuid.New()
	if _, err := svc.Subscribe(context.Background(), userID); err != nil {
		t.Fatalf("unexpected first subscribe error: %v", err)
	}

	_, err := svc.Subscribe(context.Background(), userID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected a single subscription row, got %d", len(repo.created))
	}
}

func TestSubscribe_RequiresUser(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), newFakeProfiles())

	_, err := svc.Subscribe(context.Background(), uuid.Nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCurrent_NoSubscriptionReturnsNil(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), newFakeProfiles())

	sub, err := svc.Current(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub != nil {
		t.Fatalf("expected nil subscription, got %+v", sub)
	}
}

func TestPlan_DescribesSpicyFix(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), newFakeProfiles())

	plan := svc.Plan(context.Background())
	if plan.Name != "Spicy Fix Plan" {
		t.Fatalf("unexpected plan name %q", plan.Name)
	}
	if len(plan.Benefits) != 6 {
		t.Fatalf("expected 6 benefits, got %d", len(plan.Benefits))
	}
}
