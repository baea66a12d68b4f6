package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL
// The frontend maps these codes to localized messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // token expired
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // malformed/forged token
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // token blacklisted by logout
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // duplicate email

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // no access
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // role missing from context
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // admin route
	AuthzOwnerOnly    = "AUTHZ_OWNER_ONLY"     // token email does not own the resource

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Restaurants (RESTAURANT_) ====================
	RestaurantNotFound           = "RESTAURANT_NOT_FOUND"
	RestaurantApplicationExists  = "RESTAURANT_APPLICATION_EXISTS"  // pending/verified application already on file
	RestaurantInvalidTransition  = "RESTAURANT_INVALID_TRANSITION"  // verify/reject on a non-pending application
	RestaurantVerificationFailed = "RESTAURANT_VERIFICATION_FAILED" // verify transaction failed

	// ==================== Menu (MENU_) ====================
	MenuItemNotFound   = "MENU_ITEM_NOT_FOUND"
	MenuNotSeller      = "MENU_NOT_SELLER"       // caller has no verified restaurant
	MenuInvalidPrice   = "MENU_INVALID_PRICE"    // price must be positive
	MenuUnknownCategory = "MENU_UNKNOWN_CATEGORY" // category name not registered

	// ==================== Reviews (REVIEW_) ====================
	ReviewNotFound      = "REVIEW_NOT_FOUND"
	ReviewInvalidRating = "REVIEW_INVALID_RATING" // rating must be 1-5

	// ==================== Favourites (FAVOURITE_) ====================
	FavouriteNotFound      = "FAVOURITE_NOT_FOUND"
	FavouriteAlreadyExists = "FAVOURITE_ALREADY_EXISTS"

	// ==================== Posts (POST_) ====================
	PostNotFound = "POST_NOT_FOUND"

	// ==================== Categories (CATEGORY_) ====================
	CategoryNotFound      = "CATEGORY_NOT_FOUND"
	CategoryAlreadyExists = "CATEGORY_ALREADY_EXISTS"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
