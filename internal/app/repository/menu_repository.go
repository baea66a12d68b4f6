package repository

import (
	"strings"

	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/pkg/logger"
	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(item *model.MenuItem) error
	FindByID(id uint) (*model.MenuItem, error)
	FindBySellerEmail(email string) ([]model.MenuItem, error)
	Search(q model.MenuListQuery) ([]model.MenuItem, int64, error)
	Update(item *model.MenuItem) error
	Delete(id uint) error
	ApplyRating(menuID uint, rating int) error
	CountByCategory(category string) (int64, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *model.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) FindByID(id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.Preload("Restaurant").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) FindBySellerEmail(email string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.Where("seller_email = ?", email).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Search runs the paged catalog query: case-insensitive substring over the
// name, optional category and price bounds. Returns the page plus the total
// match count (two queries, no cursor).
func (r *menuRepository) Search(q model.MenuListQuery) ([]model.MenuItem, int64, error) {
	query := r.db.Model(&model.MenuItem{})

	if q.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	if q.Category != "" {
		query = query.Where("category = ?", q.Category)
	}
	if q.MinPrice != nil {
		query = query.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		query = query.Where("price <= ?", *q.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orderClause string
	switch q.Sort {
	case "price-asc":
		orderClause = "price ASC"
	case "price-desc":
		orderClause = "price DESC"
	case "rating-desc":
		orderClause = "average_rating DESC"
	default:
		orderClause = "created_at DESC"
	}

	offset := (q.Page - 1) * q.Limit

	var items []model.MenuItem
	err := query.Preload("Restaurant").
		Order(orderClause).
		Offset(offset).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *menuRepository) Update(item *model.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) Delete(id uint) error {
	return r.db.Delete(&model.MenuItem{}, id).Error
}

// ApplyRating folds one new rating into the stored aggregate using the
// incremental mean formula, evaluated by the database in a single UPDATE:
//
//	average_rating = (average_rating * review_count + rating) / (review_count + 1)
//	review_count   = review_count + 1
//
// Both expressions read the pre-update column values, so two concurrent
// review submissions for the same item cannot lose an update. Never split
// this into a read followed by a write from application code.
func (r *menuRepository) ApplyRating(menuID uint, rating int) error {
	result := r.db.Model(&model.MenuItem{}).
		Where("id = ?", menuID).
		Updates(map[string]interface{}{
			"average_rating": gorm.Expr("(average_rating * review_count + ?) / (review_count + 1)", rating),
			"review_count":   gorm.Expr("review_count + 1"),
		})
	if result.Error != nil {
		logger.Error("Failed to apply rating to menu item", result.Error, map[string]interface{}{
			"menu_id": menuID,
			"rating":  rating,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepository) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.db.Model(&model.MenuItem{}).
		Where("category = ?", category).
		Count(&count).Error
	return count, err
}
