package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/internal/db"
	"gorm.io/gorm"
)

type reviewServiceFixture struct {
	svc      ReviewService
	menuRepo repository.MenuRepository
	db       *gorm.DB
}

func setupReviewServiceTest(t *testing.T) *reviewServiceFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	reviewRepo := repository.NewReviewRepository(testDB)
	menuRepo := repository.NewMenuRepository(testDB)
	restaurantRepo := repository.NewRestaurantRepository(testDB)

	return &reviewServiceFixture{
		svc:      NewReviewService(reviewRepo, menuRepo, restaurantRepo),
		menuRepo: menuRepo,
		db:       testDB,
	}
}

func (f *reviewServiceFixture) seedRestaurant(t *testing.T) *model.Restaurant {
	restaurant := &model.Restaurant{
		OwnerEmail: "seller@tastio.io",
		Name:       "Luigi's",
		Location:   "12 Main Street",
		Status:     model.RestaurantStatusVerified,
	}
	require.NoError(t, f.db.Create(restaurant).Error)
	return restaurant
}

func (f *reviewServiceFixture) seedMenuItem(t *testing.T, restaurantID uint) *model.MenuItem {
	item := &model.MenuItem{
		Name:         "Margherita Pizza",
		Price:        12.50,
		Category:     "Pizza",
		SellerEmail:  "seller@tastio.io",
		RestaurantID: restaurantID,
	}
	require.NoError(t, f.menuRepo.Create(item))
	return item
}

func reviewRequest(restaurantID uint, menuID *uint, rating int) model.CreateReviewRequest {
	return model.CreateReviewRequest{
		FoodName:     "Margherita Pizza",
		Rating:       rating,
		ReviewText:   "crust was perfectly crisp",
		MenuID:       menuID,
		RestaurantID: restaurantID,
	}
}

func TestReviewService_Create_MovesMenuAggregate(t *testing.T) {
	f := setupReviewServiceTest(t)
	restaurant := f.seedRestaurant(t)
	item := f.seedMenuItem(t, restaurant.ID)

	_, err := f.svc.Create("diner@tastio.io", reviewRequest(restaurant.ID, &item.ID, 4))
	require.NoError(t, err)
	_, err = f.svc.Create("diner@tastio.io", reviewRequest(restaurant.ID, &item.ID, 2))
	require.NoError(t, err)

	reloaded, err := f.menuRepo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.ReviewCount)
	assert.InDelta(t, 3.0, reloaded.AverageRating, 0.0001)
}

func TestReviewService_Create_FreeFormSkipsAggregate(t *testing.T) {
	f := setupReviewServiceTest(t)
	restaurant := f.seedRestaurant(t)
	item := f.seedMenuItem(t, restaurant.ID)

	// Review without a menu reference leaves every aggregate untouched
	review, err := f.svc.Create("diner@tastio.io", reviewRequest(restaurant.ID, nil, 5))
	require.NoError(t, err)
	assert.Equal(t, "diner@tastio.io", review.ReviewerEmail)

	reloaded, err := f.menuRepo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.ReviewCount)
}

func TestReviewService_Create_RejectsForeignMenuItem(t *testing.T) {
	f := setupReviewServiceTest(t)
	restaurant := f.seedRestaurant(t)
	item := f.seedMenuItem(t, restaurant.ID)

	other := &model.Restaurant{
		OwnerEmail: "other@tastio.io",
		Name:       "Mario's",
		Location:   "34 Side Street",
		Status:     model.RestaurantStatusVerified,
	}
	require.NoError(t, f.db.Create(other).Error)

	_, err := f.svc.Create("diner@tastio.io", reviewRequest(other.ID, &item.ID, 4))
	assert.ErrorIs(t, err, ErrReviewedMenuGap)
}

func TestReviewService_Create_UnknownRestaurant(t *testing.T) {
	f := setupReviewServiceTest(t)

	_, err := f.svc.Create("diner@tastio.io", reviewRequest(9999, nil, 4))
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestReviewService_Update_DoesNotTouchAggregate(t *testing.T) {
	f := setupReviewServiceTest(t)
	restaurant := f.seedRestaurant(t)
	item := f.seedMenuItem(t, restaurant.ID)

	review, err := f.svc.Create("diner@tastio.io", reviewRequest(restaurant.ID, &item.ID, 4))
	require.NoError(t, err)

	newRating := 1
	_, err = f.svc.Update(review.ID, "diner@tastio.io", false, model.UpdateReviewRequest{Rating: &newRating})
	require.NoError(t, err)

	// The stored aggregate keeps the rating from submission time
	reloaded, err := f.menuRepo.FindByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.ReviewCount)
	assert.InDelta(t, 4.0, reloaded.AverageRating, 0.0001)
}

func TestReviewService_UpdateDelete_OwnershipEnforced(t *testing.T) {
	f := setupReviewServiceTest(t)
	restaurant := f.seedRestaurant(t)

	review, err := f.svc.Create("diner@tastio.io", reviewRequest(restaurant.ID, nil, 4))
	require.NoError(t, err)

	text := "changed my mind about this place"
	_, err = f.svc.Update(review.ID, "stranger@tastio.io", false, model.UpdateReviewRequest{ReviewText: &text})
	assert.ErrorIs(t, err, ErrNotReviewOwner)

	err = f.svc.Delete(review.ID, "stranger@tastio.io", false)
	assert.ErrorIs(t, err, ErrNotReviewOwner)

	// Admin may delete any review
	err = f.svc.Delete(review.ID, "admin@tastio.io", true)
	require.NoError(t, err)

	_, err = f.svc.GetByID(review.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_MyReviews(t *testing.T) {
	f := setupReviewServiceTest(t)
	restaurant := f.seedRestaurant(t)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Create("diner@tastio.io", reviewRequest(restaurant.ID, nil, 5))
		require.NoError(t, err)
	}
	_, err := f.svc.Create("other@tastio.io", reviewRequest(restaurant.ID, nil, 3))
	require.NoError(t, err)

	reviews, total, err := f.svc.MyReviews("diner@tastio.io", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, reviews, 3)
}
