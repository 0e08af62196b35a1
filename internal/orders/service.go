package orders

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecentOrdersLimit caps the anonymous order feed.
const RecentOrdersLimit = 5

// Service exposes the customer-facing order views.
type Service interface {
	ListForViewer(ctx context.Context, userID *uuid.UUID) ([]models.Order, error)
	Get(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*models.Order, error)
}

type service struct {
	repo Repository
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

// ListForViewer returns the viewer's own orders when authenticated, or the
// most recent orders across all customers when anonymous.
func (s *service) ListForViewer(ctx context.Context, userID *uuid.UUID) ([]models.Order, error) {
	var (
		list []models.Order
		err  error
	)
	if userID != nil {
		list, err = s.repo.ListByUser(ctx, *userID)
	} else {
		list, err = s.repo.ListRecent(ctx, RecentOrdersLimit)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return list, nil
}

// Get loads a single order. Authenticated viewers can only read orders they
// own; anonymous viewers can read any order, matching the open recent feed.
func (s *service) Get(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}
	if userID != nil && order.UserID != nil && *order.UserID != *userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}
