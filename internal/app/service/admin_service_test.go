package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastio/tastio-backend/internal/app/model"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/internal/db"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func setupAdminServiceTest(t *testing.T) (AdminService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	statsRepo := repository.NewStatsRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	return NewAdminService(statsRepo, categoryRepo, userRepo), testDB
}

func seedStatsData(t *testing.T, testDB *gorm.DB) {
	users := []model.User{
		{Email: "a@tastio.io", PasswordHash: "x", Name: "A", Role: model.RoleUser},
		{Email: "b@tastio.io", PasswordHash: "x", Name: "B", Role: model.RoleSeller},
		{Email: "c@tastio.io", PasswordHash: "x", Name: "C", Role: model.RoleAdmin},
	}
	require.NoError(t, testDB.Create(&users).Error)

	restaurants := []model.Restaurant{
		{OwnerEmail: "b@tastio.io", Name: "B's", Location: "1 Road", Status: model.RestaurantStatusVerified},
		{OwnerEmail: "d@tastio.io", Name: "D's", Location: "2 Road", Status: model.RestaurantStatusPending},
	}
	require.NoError(t, testDB.Create(&restaurants).Error)

	require.NoError(t, testDB.Create(&model.Category{Name: "Pizza"}).Error)
	require.NoError(t, testDB.Create(&model.MenuItem{
		Name: "Margherita", Price: 12, Category: "Pizza",
		SellerEmail: "b@tastio.io", RestaurantID: restaurants[0].ID,
	}).Error)
}

func TestAdminService_Stats(t *testing.T) {
	svc, testDB := setupAdminServiceTest(t)
	seedStatsData(t, testDB)

	stats, err := svc.Stats()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.Totals.TotalUsers)
	assert.EqualValues(t, 1, stats.Totals.TotalSellers)
	assert.EqualValues(t, 2, stats.Totals.TotalRestaurants)
	assert.EqualValues(t, 1, stats.Totals.PendingRestaurants)
	assert.EqualValues(t, 1, stats.Totals.VerifiedRestaurants)
	assert.EqualValues(t, 1, stats.Totals.TotalMenuItems)

	require.Len(t, stats.Categories, 1)
	assert.Equal(t, "Pizza", stats.Categories[0].Name)
	assert.EqualValues(t, 1, stats.Categories[0].ItemCount)
}

func TestAdminService_ExportStats(t *testing.T) {
	svc, testDB := setupAdminServiceTest(t)
	seedStatsData(t, testDB)

	data, err := svc.ExportStats()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// The payload must be a readable workbook with both sheets
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Totals")
	assert.Contains(t, f.GetSheetList(), "Categories")

	value, err := f.GetCellValue("Totals", "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", value)
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	svc, testDB := setupAdminServiceTest(t)

	user := &model.User{Email: "a@tastio.io", PasswordHash: "x", Name: "A", Role: model.RoleUser}
	require.NoError(t, testDB.Create(user).Error)

	updated, err := svc.UpdateUserRole(user.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)

	var reloaded model.User
	require.NoError(t, testDB.First(&reloaded, user.ID).Error)
	assert.Equal(t, model.RoleAdmin, reloaded.Role)
}

func TestAdminService_UpdateUserRole_Invalid(t *testing.T) {
	svc, testDB := setupAdminServiceTest(t)

	user := &model.User{Email: "a@tastio.io", PasswordHash: "x", Name: "A", Role: model.RoleUser}
	require.NoError(t, testDB.Create(user).Error)

	_, err := svc.UpdateUserRole(user.ID, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.UpdateUserRole(9999, "admin")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAdminService_ListUsers(t *testing.T) {
	svc, testDB := setupAdminServiceTest(t)
	seedStatsData(t, testDB)

	users, total, err := svc.ListUsers(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, users, 2)
}
