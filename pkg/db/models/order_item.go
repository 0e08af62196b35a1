package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem snapshots one cart line at submission time. FoodName and
// FoodPrice are copies, never foreign lookups: later menu edits must not
// rewrite order history.
type OrderItem struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID    uuid.UUID       `gorm:"column:order_id;type:uuid;not null"`
	FoodItemID int64           `gorm:"column:food_item_id;not null"`
	FoodName   string          `gorm:"column:food_name;not null"`
	FoodPrice  decimal.Decimal `gorm:"column:food_price;type:numeric(10,2);not null"`
	Quantity   int             `gorm:"column:quantity;not null"`
	Subtotal   decimal.Decimal `gorm:"column:subtotal;type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}
