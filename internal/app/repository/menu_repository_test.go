package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/db"
	"gorm.io/gorm"
)

func setupMenuRepoTest(t *testing.T) (MenuRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewMenuRepository(testDB), testDB
}

func createTestMenuItem(t *testing.T, repo MenuRepository) *model.MenuItem {
	item := &model.MenuItem{
		Name:         "Margherita Pizza",
		Price:        12.50,
		Category:     "Pizza",
		SellerEmail:  "seller@tastio.io",
		RestaurantID: 1,
	}
	require.NoError(t, repo.Create(item))
	return item
}

func TestMenuRepository_ApplyRating(t *testing.T) {
	repo, _ := setupMenuRepoTest(t)
	item := createTestMenuItem(t, repo)

	// New items start unrated
	assert.Equal(t, 0, item.ReviewCount)
	assert.Equal(t, 0.0, item.AverageRating)

	require.NoError(t, repo.ApplyRating(item.ID, 4))
	require.NoError(t, repo.ApplyRating(item.ID, 2))

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.ReviewCount)
	assert.InDelta(t, 3.0, found.AverageRating, 0.0001)
}

func TestMenuRepository_ApplyRating_SequenceMatchesMean(t *testing.T) {
	repo, _ := setupMenuRepoTest(t)
	item := createTestMenuItem(t, repo)

	ratings := []int{5, 3, 4, 1, 5, 2, 4, 4, 3, 5}
	sum := 0
	for _, rating := range ratings {
		require.NoError(t, repo.ApplyRating(item.ID, rating))
		sum += rating
	}

	found, err := repo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, len(ratings), found.ReviewCount)

	expected := float64(sum) / float64(len(ratings))
	assert.InDelta(t, expected, found.AverageRating, 0.0001)
}

func TestMenuRepository_ApplyRating_UnknownItem(t *testing.T) {
	repo, _ := setupMenuRepoTest(t)

	err := repo.ApplyRating(9999, 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuRepository_Search(t *testing.T) {
	repo, _ := setupMenuRepoTest(t)

	items := []model.MenuItem{
		{Name: "Margherita Pizza", Price: 12.50, Category: "Pizza", SellerEmail: "a@tastio.io", RestaurantID: 1},
		{Name: "Pepperoni Pizza", Price: 14.00, Category: "Pizza", SellerEmail: "a@tastio.io", RestaurantID: 1},
		{Name: "Beef Burger", Price: 9.50, Category: "Burger", SellerEmail: "b@tastio.io", RestaurantID: 2},
		{Name: "Chocolate Cake", Price: 6.00, Category: "Dessert", SellerEmail: "b@tastio.io", RestaurantID: 2},
	}
	for i := range items {
		require.NoError(t, repo.Create(&items[i]))
	}

	t.Run("Search is case-insensitive", func(t *testing.T) {
		results, total, err := repo.Search(model.MenuListQuery{Search: "pIzZa", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, results, 2)
	})

	t.Run("Category filter", func(t *testing.T) {
		results, total, err := repo.Search(model.MenuListQuery{Category: "Burger", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, "Beef Burger", results[0].Name)
	})

	t.Run("Price bounds", func(t *testing.T) {
		min, max := 9.0, 13.0
		results, total, err := repo.Search(model.MenuListQuery{MinPrice: &min, MaxPrice: &max, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, item := range results {
			assert.GreaterOrEqual(t, item.Price, min)
			assert.LessOrEqual(t, item.Price, max)
		}
	})

	t.Run("Price ascending sort", func(t *testing.T) {
		results, _, err := repo.Search(model.MenuListQuery{Sort: "price-asc", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, results, 4)
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i-1].Price, results[i].Price)
		}
	})

	t.Run("Pagination totals stay constant", func(t *testing.T) {
		page1, total1, err := repo.Search(model.MenuListQuery{Page: 1, Limit: 3})
		require.NoError(t, err)
		page2, total2, err := repo.Search(model.MenuListQuery{Page: 2, Limit: 3})
		require.NoError(t, err)

		assert.EqualValues(t, 4, total1)
		assert.Equal(t, total1, total2)
		assert.Len(t, page1, 3)
		assert.Len(t, page2, 1)
	})

	t.Run("No matches", func(t *testing.T) {
		results, total, err := repo.Search(model.MenuListQuery{Search: "sushi", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Len(t, results, 0)
	})
}

func TestMenuRepository_DeletedItemsLeaveSearch(t *testing.T) {
	repo, _ := setupMenuRepoTest(t)
	item := createTestMenuItem(t, repo)

	require.NoError(t, repo.Delete(item.ID))

	_, err := repo.FindByID(item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, total, err := repo.Search(model.MenuListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestMenuRepository_CountByCategory(t *testing.T) {
	repo, _ := setupMenuRepoTest(t)

	require.NoError(t, repo.Create(&model.MenuItem{Name: "Pizza A", Price: 10, Category: "Pizza", SellerEmail: "a@tastio.io", RestaurantID: 1}))
	require.NoError(t, repo.Create(&model.MenuItem{Name: "Pizza B", Price: 11, Category: "Pizza", SellerEmail: "a@tastio.io", RestaurantID: 1}))

	count, err := repo.CountByCategory("Pizza")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByCategory("Sushi")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
