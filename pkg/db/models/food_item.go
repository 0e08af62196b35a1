package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FoodItem is one purchasable dish on the menu. Rows are seeded by
// migration and never mutated through the API.
type FoodItem struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Calories    int             `gorm:"column:calories;not null"`
	SpiceLevel  int             `gorm:"column:spice_level;not null"`
	Category    string          `gorm:"column:category;not null"`
	ImageURL    *string         `gorm:"column:image_url"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
