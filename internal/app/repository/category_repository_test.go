package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/db"
)

func TestCategoryRepository_ListWithCounts(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	categoryRepo := NewCategoryRepository(testDB)
	menuRepo := NewMenuRepository(testDB)

	require.NoError(t, categoryRepo.Create(&model.Category{Name: "Pizza"}))
	require.NoError(t, categoryRepo.Create(&model.Category{Name: "Burger"}))
	require.NoError(t, categoryRepo.Create(&model.Category{Name: "Dessert"}))

	require.NoError(t, menuRepo.Create(&model.MenuItem{Name: "Margherita", Price: 12, Category: "Pizza", SellerEmail: "s@tastio.io", RestaurantID: 1}))
	require.NoError(t, menuRepo.Create(&model.MenuItem{Name: "Pepperoni", Price: 14, Category: "Pizza", SellerEmail: "s@tastio.io", RestaurantID: 1}))
	require.NoError(t, menuRepo.Create(&model.MenuItem{Name: "Cheeseburger", Price: 9, Category: "Burger", SellerEmail: "s@tastio.io", RestaurantID: 1}))

	rows, err := categoryRepo.ListWithCounts()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	counts := make(map[string]int64)
	for _, row := range rows {
		counts[row.Name] = row.ItemCount
	}
	assert.EqualValues(t, 2, counts["Pizza"])
	assert.EqualValues(t, 1, counts["Burger"])
	// Empty categories still appear with a zero count
	assert.EqualValues(t, 0, counts["Dessert"])
}

func TestCategoryRepository_CountsFollowDeletes(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	categoryRepo := NewCategoryRepository(testDB)
	menuRepo := NewMenuRepository(testDB)

	require.NoError(t, categoryRepo.Create(&model.Category{Name: "Pizza"}))
	item := &model.MenuItem{Name: "Margherita", Price: 12, Category: "Pizza", SellerEmail: "s@tastio.io", RestaurantID: 1}
	require.NoError(t, menuRepo.Create(item))

	rows, err := categoryRepo.ListWithCounts()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0].ItemCount)

	// Counts are computed at read time, so a delete is reflected immediately
	require.NoError(t, menuRepo.Delete(item.ID))

	rows, err = categoryRepo.ListWithCounts()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 0, rows[0].ItemCount)
}

func TestCategoryRepository_FindByName(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	repo := NewCategoryRepository(testDB)
	require.NoError(t, repo.Create(&model.Category{Name: "Pasta"}))

	found, err := repo.FindByName("Pasta")
	require.NoError(t, err)
	assert.Equal(t, "Pasta", found.Name)

	_, err = repo.FindByName("Sushi")
	assert.Error(t, err)
}
