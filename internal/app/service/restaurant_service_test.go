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

func setupRestaurantServiceTest(t *testing.T) (RestaurantService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	restaurantRepo := repository.NewRestaurantRepository(testDB)
	return NewRestaurantService(restaurantRepo, testDB), testDB
}

func seedOwner(t *testing.T, testDB *gorm.DB, email string) *model.User {
	user := &model.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Owner",
		Role:         model.RoleUser,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func applyRequest() model.ApplyRestaurantRequest {
	return model.ApplyRestaurantRequest{
		Name:     "Luigi's",
		Location: "12 Main Street",
	}
}

func TestRestaurantService_Apply(t *testing.T) {
	svc, testDB := setupRestaurantServiceTest(t)
	seedOwner(t, testDB, "owner@tastio.io")

	restaurant, err := svc.Apply("owner@tastio.io", applyRequest())
	require.NoError(t, err)
	assert.Equal(t, model.RestaurantStatusPending, restaurant.Status)
	assert.Equal(t, "owner@tastio.io", restaurant.OwnerEmail)
}

func TestRestaurantService_Apply_DuplicateRejected(t *testing.T) {
	svc, testDB := setupRestaurantServiceTest(t)
	seedOwner(t, testDB, "owner@tastio.io")

	_, err := svc.Apply("owner@tastio.io", applyRequest())
	require.NoError(t, err)

	// Pending application blocks a second one
	_, err = svc.Apply("owner@tastio.io", applyRequest())
	assert.ErrorIs(t, err, ErrApplicationExists)
}

func TestRestaurantService_Apply_AfterRejectionReusesRow(t *testing.T) {
	svc, testDB := setupRestaurantServiceTest(t)
	seedOwner(t, testDB, "owner@tastio.io")

	first, err := svc.Apply("owner@tastio.io", applyRequest())
	require.NoError(t, err)

	_, err = svc.Reject(first.ID, "incomplete address details")
	require.NoError(t, err)

	req := applyRequest()
	req.Name = "Luigi's Trattoria"
	second, err := svc.Apply("owner@tastio.io", req)
	require.NoError(t, err)

	// Same row, reset state
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, model.RestaurantStatusPending, second.Status)
	assert.Equal(t, "Luigi's Trattoria", second.Name)
	assert.Empty(t, second.RejectionReason)
}

func TestRestaurantService_Verify_PromotesOwner(t *testing.T) {
	svc, testDB := setupRestaurantServiceTest(t)
	owner := seedOwner(t, testDB, "owner@tastio.io")

	restaurant, err := svc.Apply("owner@tastio.io", applyRequest())
	require.NoError(t, err)

	verified, err := svc.Verify(restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RestaurantStatusVerified, verified.Status)
	require.NotNil(t, verified.VerifiedAt)

	var reloaded model.User
	require.NoError(t, testDB.First(&reloaded, owner.ID).Error)
	assert.Equal(t, model.RoleSeller, reloaded.Role)
}

func TestRestaurantService_Verify_MissingOwnerRollsBack(t *testing.T) {
	svc, testDB := setupRestaurantServiceTest(t)

	// Application without a matching user record
	restaurant, err := svc.Apply("ghost@tastio.io", applyRequest())
	require.NoError(t, err)

	_, err = svc.Verify(restaurant.ID)
	require.Error(t, err)

	// The restaurant must still be pending
	var reloaded model.Restaurant
	require.NoError(t, testDB.First(&reloaded, restaurant.ID).Error)
	assert.Equal(t, model.RestaurantStatusPending, reloaded.Status)
}

func TestRestaurantService_Verify_OnlyFromPending(t *testing.T) {
	svc, testDB := setupRestaurantServiceTest(t)
	seedOwner(t, testDB, "owner@tastio.io")

	restaurant, err := svc.Apply("owner@tastio.io", applyRequest())
	require.NoError(t, err)

	_, err = svc.Verify(restaurant.ID)
	require.NoError(t, err)

	// Verifying twice is not a valid transition
	_, err = svc.Verify(restaurant.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRestaurantService_Reject(t *testing.T) {
	svc, testDB := setupRestaurantServiceTest(t)
	seedOwner(t, testDB, "owner@tastio.io")

	restaurant, err := svc.Apply("owner@tastio.io", applyRequest())
	require.NoError(t, err)

	rejected, err := svc.Reject(restaurant.ID, "location could not be confirmed")
	require.NoError(t, err)
	assert.Equal(t, model.RestaurantStatusRejected, rejected.Status)
	assert.Equal(t, "location could not be confirmed", rejected.RejectionReason)

	// No rejected -> rejected or verified -> rejected transitions
	_, err = svc.Reject(restaurant.ID, "again")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRestaurantService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupRestaurantServiceTest(t)

	_, err := svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
