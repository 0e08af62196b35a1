package profiles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
)

type fakeRepo struct {
	profiles map[uuid.UUID]*models.Profile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: map[uuid.UUID]*models.Profile{}}
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Upsert(_ context.Context, profile *models.Profile) (*models.Profile, error) {
	if existing, ok := f.profiles[profile.ID]; ok {
		plan := existing.SubscriptionPlan
		updated := *profile
		updated.SubscriptionPlan = plan
		f.profiles[profile.ID] = &updated
		return &updated, nil
	}
	copied := *profile
	f.profiles[profile.ID] = &copied
	return &copied, nil
}

func (f *fakeRepo) SetSubscriptionPlan(_ context.Context, id uuid.UUID, plan string) error {
	if p, ok := f.profiles[id]; ok {
		p.SubscriptionPlan = enums.SubscriptionPlan(plan)
	}
	return nil
}

func newServiceWithRepo(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return svc
}

func TestService_GetRequiresUser(t *testing.T) {
	svc := newServiceWithRepo(t, newFakeRepo())

	_, err := svc.Get(context.Background(), uuid.Nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestService_GetMaterializesDefaultProfile(t *testing.T) {
	svc := newServiceWithRepo(t, newFakeRepo())
	userID := uuid.New()

	profile, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID != userID {
		t.Fatalf("expected profile keyed by user, got %s", profile.ID)
	}
	if profile.SubscriptionPlan != enums.SubscriptionPlanFree {
		t.Fatalf("expected free plan default, got %s", profile.SubscriptionPlan)
	}
}

func TestService_UpdatePreservesSubscriptionPlan(t *testing.T) {
	repo := newFakeRepo()
	userID := uuid.New()
	repo.profiles[userID] = &models.Profile{ID: userID, SubscriptionPlan: enums.SubscriptionPlanSpicyFix}

	svc := newServiceWithRepo(t, repo)

	name := "Amira"
	profile, err := svc.Update(context.Background(), userID, UpdateInput{FirstName: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.FirstName == nil || *profile.FirstName != "Amira" {
		t.Fatalf("expected first name saved, got %v", profile.FirstName)
	}
	if profile.SubscriptionPlan != enums.SubscriptionPlanSpicyFix {
		t.Fatalf("expected plan untouched, got %s", profile.SubscriptionPlan)
	}
}

func TestService_UpdateRequiresUser(t *testing.T) {
	svc := newServiceWithRepo(t, newFakeRepo())

	_, err := svc.Update(context.Background(), uuid.Nil, UpdateInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
