package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
)

type fakeRepository struct {
	findFn       func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	listRecentFn func(ctx context.Context, limit int) ([]models.Order, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	return order, nil
}

func (f *fakeRepository) CreateOrderItems(context.Context, []models.OrderItem) error { return nil }

func (f *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if f.findFn != nil {
		return f.findFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRepository) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	if f.listRecentFn != nil {
		return f.listRecentFn(ctx, limit)
	}
	return nil, nil
}

func newServiceWithRepo(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return svc
}

func TestService_ListForViewerAuthenticated(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepository{
		listByUserFn: func(_ context.Context, got uuid.UUID) ([]models.Order, error) {
			if got != userID {
				t.Fatalf("expected query for %s, got %s", userID, got)
			}
			return []models.Order{{ID: uuid.New(), UserID: &userID}}, nil
		},
		listRecentFn: func(context.Context, int) ([]models.Order, error) {
			t.Fatal("recent feed must not be used for signed-in viewers")
			return nil, nil
		},
	}

	svc := newServiceWithRepo(t, repo)
	list, err := svc.ListForViewer(context.Background(), &userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 order, got %d", len(list))
	}
}

func TestService_ListForViewerAnonymous(t *testing.T) {
	repo := &fakeRepository{
		listRecentFn: func(_ context.Context, limit int) ([]models.Order, error) {
			if limit != RecentOrdersLimit {
				t.Fatalf("expected limit %d, got %d", RecentOrdersLimit, limit)
			}
			return []models.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}

	svc := newServiceWithRepo(t, repo)
	list, err := svc.ListForViewer(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(list))
	}
}

func TestService_GetNotFound(t *testing.T) {
	svc := newServiceWithRepo(t, &fakeRepository{})

	_, err := svc.Get(context.Background(), uuid.New(), nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_GetHidesOtherUsersOrders(t *testing.T) {
	owner := uuid.New()
	viewer := uuid.New()
	repo := &fakeRepository{
		findFn: func(_ context.Context, id uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: id, UserID: &owner}, nil
		},
	}

	svc := newServiceWithRepo(t, repo)
	_, err := svc.Get(context.Background(), uuid.New(), &viewer)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign order, got %v", err)
	}
}

func TestService_GetOwnOrder(t *testing.T) {
	owner := uuid.New()
	repo := &fakeRepository{
		findFn: func(_ context.Context, id uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: id, UserID: &owner}, nil
		},
	}

	svc := newServiceWithRepo(t, repo)
	order, err := svc.Get(context.Background(), uuid.New(), &owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.UserID == nil || *order.UserID != owner {
		t.Fatalf("unexpected order owner %v", order.UserID)
	}
}
