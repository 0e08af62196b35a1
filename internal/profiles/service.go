package profiles

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateInput carries the editable profile fields. Nil means "leave as is"
// for no field: the whole form is submitted at once.
type UpdateInput struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	City       *string
	PostalCode *string
}

// Service exposes the customer profile reads and writes. Both operations
// require an authenticated user.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*models.Profile, error)
}

type service struct {
	repo Repository
}

// NewService builds a profiles service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profiles repository required")
	}
	return &service{repo: repo}, nil
}

// Get loads the profile, materializing an empty free-plan profile for users
// who have never saved one.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to view your profile")
	}
	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Profile{ID: userID, SubscriptionPlan: enums.SubscriptionPlanFree}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading profile")
	}
	return profile, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*models.Profile, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to update your profile")
	}
	profile := &models.Profile{
		ID:               userID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Phone:            input.Phone,
		Address:          input.Address,
		City:             input.City,
		PostalCode:       input.PostalCode,
		SubscriptionPlan: enums.SubscriptionPlanFree,
	}
	if _, err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving profile")
	}
	// Re-read so the response reflects the stored subscription plan, which
	// the upsert deliberately never touches.
	saved, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reloading profile")
	}
	return saved, nil
}
