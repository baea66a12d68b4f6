package repository

import (
	"strings"

	"github.com/tastio/tastio-backend/internal/app/model"
	"gorm.io/gorm"
)

// LeaderboardEntry is one ranked reviewer row. Reviewers without a matching
// user record are dropped by the join.
type LeaderboardEntry struct {
	ReviewerEmail string `json:"reviewer_email"`
	Name          string `json:"name"`
	PhotoURL      string `json:"photo_url"`
	TotalReviews  int64  `json:"total_reviews"`
}

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindByReviewerEmail(email string, offset, limit int) ([]model.Review, int64, error)
	Latest(limit int) ([]model.Review, error)
	Search(q model.ReviewListQuery) ([]model.Review, int64, error)
	Update(review *model.Review) error
	Delete(id uint) error
	Leaderboard(limit int) ([]LeaderboardEntry, error)
	CountAll() (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

// FindByID loads a review with its restaurant attached. A missing restaurant
// is tolerated: the field stays nil and its projection is simply absent.
func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.Preload("Restaurant").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByReviewerEmail(email string, offset, limit int) ([]model.Review, int64, error) {
	query := r.db.Model(&model.Review{}).Where("reviewer_email = ?", email)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []model.Review
	err := query.Preload("Restaurant").
		Order("posted_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// Latest returns the newest reviews with restaurant fields attached
func (r *reviewRepository) Latest(limit int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Preload("Restaurant").
		Order("posted_at DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Search runs the paged review query: case-insensitive substring over food
// name and review text, optional minimum rating, four sort orders. Returns
// the page slice plus the total match count (two queries, no cursor).
func (r *reviewRepository) Search(q model.ReviewListQuery) ([]model.Review, int64, error) {
	query := r.db.Model(&model.Review{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("LOWER(food_name) LIKE ? OR LOWER(review_text) LIKE ?", pattern, pattern)
	}
	if q.MinRating != nil {
		query = query.Where("rating >= ?", *q.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orderClause string
	switch q.Sort {
	case "oldest":
		orderClause = "posted_at ASC"
	case "rating-asc":
		orderClause = "rating ASC"
	case "rating-desc":
		orderClause = "rating DESC"
	default:
		orderClause = "posted_at DESC"
	}

	offset := (q.Page - 1) * q.Limit

	var reviews []model.Review
	err := query.Preload("Restaurant").
		Order(orderClause).
		Offset(offset).
		Limit(q.Limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&model.Review{}, id).Error
}

// Leaderboard groups reviews by reviewer email, counts per group, joins the
// user record for display fields and ranks by count descending. Ties keep
// whatever order the grouping produces. limit <= 0 returns all rows.
func (r *reviewRepository) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	query := r.db.Table("reviews").
		Select("reviews.reviewer_email, users.name, users.photo_url, COUNT(reviews.id) AS total_reviews").
		Joins("JOIN users ON users.email = reviews.reviewer_email").
		// Table() bypasses gorm's soft-delete scope, so filter explicitly
		Where("reviews.deleted_at IS NULL AND users.deleted_at IS NULL").
		Group("reviews.reviewer_email, users.name, users.photo_url").
		Order("total_reviews DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []LeaderboardEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *reviewRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Review{}).Count(&count).Error
	return count, err
}
