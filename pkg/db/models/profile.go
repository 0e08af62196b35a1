package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/amirulhakim/spicebite-backend/pkg/enums"
)

// Profile stores the editable customer profile keyed by user id.
type Profile struct {
	ID               uuid.UUID              `gorm:"column:id;type:uuid;primaryKey"`
	FirstName        *string                `gorm:"column:first_name"`
	LastName         *string                `gorm:"column:last_name"`
	Phone            *string                `gorm:"column:phone"`
	Address          *string                `gorm:"column:address"`
	City             *string                `gorm:"column:city"`
	PostalCode       *string                `gorm:"column:postal_code"`
	SubscriptionPlan enums.SubscriptionPlan `gorm:"column:subscription_plan;not null;default:'free'"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
