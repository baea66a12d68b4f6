package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("invalid role")

// PlatformStats is the admin dashboard payload: raw totals plus the per
// category menu item histogram.
type PlatformStats struct {
	Totals     *repository.PlatformTotals `json:"totals"`
	Categories []model.CategoryWithCount  `json:"categories"`
}

type AdminService interface {
	Stats() (*PlatformStats, error)
	ExportStats() ([]byte, error)
	ListUsers(page, limit int) ([]model.User, int64, error)
	UpdateUserRole(userID uint, role string) (*model.User, error)
}

type adminService struct {
	statsRepo    repository.StatsRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

func NewAdminService(
	statsRepo repository.StatsRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) AdminService {
	return &adminService{
		statsRepo:    statsRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

func (s *adminService) Stats() (*PlatformStats, error) {
	totals, err := s.statsRepo.Totals()
	if err != nil {
		logger.Error("Failed to compute platform totals", err, nil)
		return nil, err
	}

	categories, err := s.categoryRepo.ListWithCounts()
	if err != nil {
		logger.Error("Failed to compute category counts", err, nil)
		return nil, err
	}

	return &PlatformStats{
		Totals:     totals,
		Categories: categories,
	}, nil
}

// ExportStats renders the dashboard numbers as an XLSX workbook with one
// sheet of totals and one sheet of category counts.
func (s *adminService) ExportStats() ([]byte, error) {
	stats, err := s.Stats()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const totalsSheet = "Totals"
	f.SetSheetName(f.GetSheetName(0), totalsSheet)

	totalRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total users", stats.Totals.TotalUsers},
		{"Total sellers", stats.Totals.TotalSellers},
		{"Total restaurants", stats.Totals.TotalRestaurants},
		{"Pending restaurants", stats.Totals.PendingRestaurants},
		{"Verified restaurants", stats.Totals.VerifiedRestaurants},
		{"Rejected restaurants", stats.Totals.RejectedRestaurants},
		{"Total menu items", stats.Totals.TotalMenuItems},
		{"Total reviews", stats.Totals.TotalReviews},
		{"Total posts", stats.Totals.TotalPosts},
	}
	for i, row := range totalRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(totalsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const categorySheet = "Categories"
	if _, err := f.NewSheet(categorySheet); err != nil {
		return nil, err
	}

	header := []interface{}{"Category", "Menu items"}
	if err := f.SetSheetRow(categorySheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, c := range stats.Categories {
		row := []interface{}{c.Name, c.ItemCount}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(categorySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("Failed to write stats workbook", err, nil)
		return nil, err
	}

	logger.Info("Stats workbook exported", map[string]interface{}{
		"categories": len(stats.Categories),
	})
	return buf.Bytes(), nil
}

func (s *adminService) ListUsers(page, limit int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.userRepo.List((page-1)*limit, limit)
}

func (s *adminService) UpdateUserRole(userID uint, role string) (*model.User, error) {
	switch model.UserRole(role) {
	case model.RoleUser, model.RoleSeller, model.RoleAdmin:
	default:
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepo.UpdateRole(user.Email, model.UserRole(role)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Role = model.UserRole(role)

	logger.Info("User role updated", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    role,
	})
	return user, nil
}
