package orders

import (
	"context"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists order headers and their line items. CreateOrder and
// CreateOrderItems are separate writes on purpose; the submission flow never
// wraps them in a shared transaction.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ListRecent(ctx context.Context, limit int) ([]models.Order, error)
}
