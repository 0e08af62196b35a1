package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/pkg/enums"
)

// Subscription records a customer's meal-plan enrollment.
type Subscription struct {
	ID           uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID                `gorm:"column:user_id;type:uuid;not null;index"`
	Plan         enums.SubscriptionPlan   `gorm:"column:plan;not null"`
	Status       enums.SubscriptionStatus `gorm:"column:status;not null;default:'active'"`
	MonthlyPrice decimal.Decimal          `gorm:"column:monthly_price;type:numeric(10,2);not null"`
	StartedAt    time.Time                `gorm:"column:started_at;not null"`
	CancelledAt  *time.Time               `gorm:"column:cancelled_at"`
	CreatedAt    time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
