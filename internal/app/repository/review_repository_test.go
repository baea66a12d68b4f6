package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/db"
	"gorm.io/gorm"
)

func setupReviewRepoTest(t *testing.T) (ReviewRepository, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewReviewRepository(testDB), testDB
}

func seedUser(t *testing.T, testDB *gorm.DB, email, name string) {
	require.NoError(t, testDB.Create(&model.User{
		Email:        email,
		PasswordHash: "x",
		Name:         name,
	}).Error)
}

func seedReview(t *testing.T, repo ReviewRepository, email, food string, rating int, postedAt time.Time) *model.Review {
	review := &model.Review{
		ReviewerEmail: email,
		FoodName:      food,
		Rating:        rating,
		ReviewText:    "definitely worth ordering again",
		RestaurantID:  1,
		PostedAt:      postedAt,
	}
	require.NoError(t, repo.Create(review))
	return review
}

func TestReviewRepository_Latest(t *testing.T) {
	repo, _ := setupReviewRepoTest(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 8; i++ {
		seedReview(t, repo, "diner@tastio.io", "Dish", 4, base.Add(time.Duration(i)*time.Minute))
	}

	reviews, err := repo.Latest(6)
	require.NoError(t, err)
	require.Len(t, reviews, 6)

	// Newest first
	for i := 1; i < len(reviews); i++ {
		assert.True(t, !reviews[i-1].PostedAt.Before(reviews[i].PostedAt))
	}
}

func TestReviewRepository_Search(t *testing.T) {
	repo, _ := setupReviewRepoTest(t)

	now := time.Now()
	seedReview(t, repo, "a@tastio.io", "Margherita Pizza", 5, now.Add(-3*time.Minute))
	seedReview(t, repo, "b@tastio.io", "Beef Burger", 2, now.Add(-2*time.Minute))
	seedReview(t, repo, "c@tastio.io", "Pepperoni Pizza", 4, now.Add(-time.Minute))

	t.Run("Case-insensitive over food name", func(t *testing.T) {
		reviews, total, err := repo.Search(model.ReviewListQuery{Search: "PIZZA", Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, reviews, 2)
	})

	t.Run("Minimum rating filter", func(t *testing.T) {
		min := 4
		reviews, total, err := repo.Search(model.ReviewListQuery{MinRating: &min, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, review := range reviews {
			assert.GreaterOrEqual(t, review.Rating, min)
		}
	})

	t.Run("Rating descending sort", func(t *testing.T) {
		reviews, _, err := repo.Search(model.ReviewListQuery{Sort: "rating-desc", Page: 1, Limit: 10})
		require.NoError(t, err)
		require.Len(t, reviews, 3)
		for i := 1; i < len(reviews); i++ {
			assert.GreaterOrEqual(t, reviews[i-1].Rating, reviews[i].Rating)
		}
	})

	t.Run("Pages partition the result set", func(t *testing.T) {
		page1, total, err := repo.Search(model.ReviewListQuery{Page: 1, Limit: 2})
		require.NoError(t, err)
		page2, total2, err := repo.Search(model.ReviewListQuery{Page: 2, Limit: 2})
		require.NoError(t, err)

		assert.EqualValues(t, 3, total)
		assert.Equal(t, total, total2)
		assert.Len(t, page1, 2)
		assert.Len(t, page2, 1)

		seen := make(map[uint]bool)
		for _, review := range append(page1, page2...) {
			assert.False(t, seen[review.ID], "review %d appeared on two pages", review.ID)
			seen[review.ID] = true
		}
	})
}

func TestReviewRepository_Leaderboard(t *testing.T) {
	repo, testDB := setupReviewRepoTest(t)

	seedUser(t, testDB, "alice@tastio.io", "Alice")
	seedUser(t, testDB, "bob@tastio.io", "Bob")

	now := time.Now()
	for i := 0; i < 3; i++ {
		seedReview(t, repo, "alice@tastio.io", "Dish", 5, now)
	}
	seedReview(t, repo, "bob@tastio.io", "Dish", 3, now)
	// Reviewer with no user record must be dropped by the join
	seedReview(t, repo, "ghost@tastio.io", "Dish", 4, now)

	entries, err := repo.Leaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "alice@tastio.io", entries[0].ReviewerEmail)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.EqualValues(t, 3, entries[0].TotalReviews)
	assert.Equal(t, "bob@tastio.io", entries[1].ReviewerEmail)
	assert.EqualValues(t, 1, entries[1].TotalReviews)

	// Per-reviewer counts must sum to the listed reviewers' review count
	var sum int64
	for _, entry := range entries {
		sum += entry.TotalReviews
	}
	assert.EqualValues(t, 4, sum)
}

func TestReviewRepository_Leaderboard_ExcludesDeletedReviews(t *testing.T) {
	repo, testDB := setupReviewRepoTest(t)

	seedUser(t, testDB, "alice@tastio.io", "Alice")

	now := time.Now()
	seedReview(t, repo, "alice@tastio.io", "Dish", 5, now)
	deleted := seedReview(t, repo, "alice@tastio.io", "Dish", 5, now)
	require.NoError(t, repo.Delete(deleted.ID))

	entries, err := repo.Leaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].TotalReviews)
}

func TestReviewRepository_FindByReviewerEmail(t *testing.T) {
	repo, _ := setupReviewRepoTest(t)

	now := time.Now()
	seedReview(t, repo, "alice@tastio.io", "Dish A", 5, now.Add(-time.Minute))
	seedReview(t, repo, "alice@tastio.io", "Dish B", 4, now)
	seedReview(t, repo, "bob@tastio.io", "Dish C", 3, now)

	reviews, total, err := repo.FindByReviewerEmail("alice@tastio.io", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Dish B", reviews[0].FoodName)
}
