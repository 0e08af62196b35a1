package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
	"github.com/amirulhakim/spicebite-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT,
  delivery_address TEXT NOT NULL,
  city TEXT NOT NULL,
  postal_code TEXT,
  payment_method TEXT NOT NULL DEFAULT 'cash',
  total_amount NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  food_item_id INTEGER NOT NULL,
  food_name TEXT NOT NULL,
  food_price NUMERIC NOT NULL,
  quantity INTEGER NOT NULL,
  subtotal NUMERIC NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(orderItems).Error)
	return db
}

func newOrderFixture(userID *uuid.UUID) *models.Order {
	return &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		CustomerName:    "Amira",
		CustomerEmail:   "amira@example.com",
		DeliveryAddress: "12 Jalan Api",
		City:            "Kuala Lumpur",
		PaymentMethod:   enums.PaymentMethodCash,
		TotalAmount:     decimal.RequireFromString("57.80"),
		Status:          enums.OrderStatusPending,
	}
}

func TestRepository_CreateOrderAndItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order, err := repo.CreateOrder(ctx, newOrderFixture(nil))
	require.NoError(t, err)

	items := []models.OrderItem{
		{
			ID:         uuid.New(),
			OrderID:    order.ID,
			FoodItemID: 1,
			FoodName:   "Dragon's Breath Noodles",
			FoodPrice:  decimal.RequireFromString("28.90"),
			Quantity:   2,
			Subtotal:   decimal.RequireFromString("57.80"),
		},
	}
	require.NoError(t, repo.CreateOrderItems(ctx, items))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	require.Equal(t, "Dragon's Breath Noodles", found.Items[0].FoodName)
	require.True(t, found.TotalAmount.Equal(decimal.RequireFromString("57.80")))
}

func TestRepository_CreateOrderItemsEmptyIsNoop(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.CreateOrderItems(context.Background(), nil))
}

func TestRepository_OrphanHeaderIsReadable(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order, err := repo.CreateOrder(ctx, newOrderFixture(nil))
	require.NoError(t, err)

	// No items were ever written for this header.
	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Empty(t, found.Items)
}

func TestRepository_ListByUserFiltersOwner(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()

	_, err := repo.CreateOrder(ctx, newOrderFixture(&owner))
	require.NoError(t, err)
	_, err = repo.CreateOrder(ctx, newOrderFixture(&stranger))
	require.NoError(t, err)
	_, err = repo.CreateOrder(ctx, newOrderFixture(nil))
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].UserID)
	require.Equal(t, owner, *list[0].UserID)
}

func TestRepository_ListRecentLimitsAndOrders(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	marker := uuid.New()
	for i := 0; i < 7; i++ {
		order := newOrderFixture(&marker)
		order.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Exec(
			`INSERT INTO orders (id, user_id, customer_name, customer_email, delivery_address, city, payment_method, total_amount, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			order.ID.String(), marker.String(), order.CustomerName, order.CustomerEmail, order.DeliveryAddress,
			order.City, string(order.PaymentMethod), order.TotalAmount.String(), string(order.Status),
			order.CreatedAt, order.CreatedAt,
		).Error)
	}

	list, err := repo.ListRecent(ctx, RecentOrdersLimit)
	require.NoError(t, err)
	require.Len(t, list, RecentOrdersLimit)
	for i := 1; i < len(list); i++ {
		require.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt), "expected newest-first ordering")
	}
}
