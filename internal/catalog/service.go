package catalog

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes menu reads to the HTTP layer and the checkout flow.
type Service interface {
	List(ctx context.Context) ([]models.FoodItem, error)
	Get(ctx context.Context, id int64) (*models.FoodItem, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.FoodItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing menu items")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.FoodItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading menu item")
	}
	return item, nil
}
