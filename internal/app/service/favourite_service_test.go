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

func setupFavouriteServiceTest(t *testing.T) (FavouriteService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	favouriteRepo := repository.NewFavouriteRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	return NewFavouriteService(favouriteRepo, reviewRepo), testDB
}

func seedFavouriteReview(t *testing.T, testDB *gorm.DB) *model.Review {
	review := &model.Review{
		ReviewerEmail: "author@tastio.io",
		FoodName:      "Margherita Pizza",
		Rating:        5,
		ReviewText:    "crust was perfectly crisp",
		RestaurantID:  1,
	}
	require.NoError(t, testDB.Create(review).Error)
	return review
}

func TestFavouriteService_AddAndList(t *testing.T) {
	svc, testDB := setupFavouriteServiceTest(t)
	review := seedFavouriteReview(t, testDB)

	favourite, err := svc.Add("diner@tastio.io", review.ID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, favourite.ReviewID)

	favourites, err := svc.List("diner@tastio.io")
	require.NoError(t, err)
	require.Len(t, favourites, 1)
	require.NotNil(t, favourites[0].Review)
	assert.Equal(t, "Margherita Pizza", favourites[0].Review.FoodName)

	// Another user's list stays empty
	favourites, err = svc.List("other@tastio.io")
	require.NoError(t, err)
	assert.Len(t, favourites, 0)
}

func TestFavouriteService_Add_Duplicate(t *testing.T) {
	svc, testDB := setupFavouriteServiceTest(t)
	review := seedFavouriteReview(t, testDB)

	_, err := svc.Add("diner@tastio.io", review.ID)
	require.NoError(t, err)

	_, err = svc.Add("diner@tastio.io", review.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavourite)
}

func TestFavouriteService_Add_UnknownReview(t *testing.T) {
	svc, _ := setupFavouriteServiceTest(t)

	_, err := svc.Add("diner@tastio.io", 9999)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestFavouriteService_Remove(t *testing.T) {
	svc, testDB := setupFavouriteServiceTest(t)
	review := seedFavouriteReview(t, testDB)

	_, err := svc.Add("diner@tastio.io", review.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove("diner@tastio.io", review.ID))

	favourites, err := svc.List("diner@tastio.io")
	require.NoError(t, err)
	assert.Len(t, favourites, 0)

	// Removing twice reports not found
	err = svc.Remove("diner@tastio.io", review.ID)
	assert.ErrorIs(t, err, ErrFavouriteNotFound)
}
