package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	foodItems := `
CREATE TABLE IF NOT EXISTS food_items (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  price NUMERIC NOT NULL,
  calories INTEGER NOT NULL,
  spice_level INTEGER NOT NULL,
  category TEXT NOT NULL,
  image_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(foodItems).Error)
	require.NoError(t, db.Exec(`DELETE FROM food_items`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO food_items (id, name, description, price, calories, spice_level, category) VALUES
		 (1, 'Dragon''s Breath Noodles', 'Fiery noodles', 28.90, 650, 5, 'Noodles'),
		 (2, 'Inferno Chicken Wings', 'Crispy wings', 24.50, 720, 4, 'Chicken'),
		 (3, 'Volcano Curry Rice', 'Aromatic curry', 26.90, 580, 4, 'Rice')`,
	).Error)
	return db
}

func TestRepository_List(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, int64(1), items[0].ID)
	require.True(t, items[0].Price.Equal(decimal.RequireFromString("28.90")))
}

func TestRepository_FindByID(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	item, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "Inferno Chicken Wings", item.Name)

	_, err = repo.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_FindByIDs(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	items, err := repo.FindByIDs(context.Background(), []int64{3, 1})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(1), items[0].ID)
	require.Equal(t, int64(3), items[1].ID)

	items, err = repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, items)
}
