package catalog

import (
	"context"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes read access to the menu catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.FoodItem, error)
	FindByID(ctx context.Context, id int64) (*models.FoodItem, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.FoodItem, error)
}
