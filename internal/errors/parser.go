package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts database and driver errors into a code plus a message
// that is safe to return to the client. The context string is a short label
// like "create review" used to pick the fallback message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "an unexpected error occurred",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// PostgreSQL constraint violations

	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStrLower)
	}

	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "a required field is missing",
		}
	}

	if strings.Contains(errStrLower, "check constraint") {
		if strings.Contains(errStrLower, "rating") {
			return ErrorInfo{
				Code:    ReviewInvalidRating,
				Message: "rating must be between 1 and 5",
			}
		}
		return ErrorInfo{
			Code:    ValidationInvalidInput,
			Message: "input value is not valid",
		}
	}

	// Network / connection errors towards the database or external services
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "a downstream service is unavailable, please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "an unexpected error occurred, please try again later",
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "email") || strings.Contains(errLower, "idx_users_email") {
		return ErrorInfo{
			Code:    AuthEmailAlreadyExists,
			Message: "this email is already registered",
		}
	}
	if strings.Contains(errLower, "owner_email") || strings.Contains(errLower, "idx_restaurants_owner_email") {
		return ErrorInfo{
			Code:    RestaurantApplicationExists,
			Message: "an application already exists for this account",
		}
	}
	if strings.Contains(errLower, "favourites") || strings.Contains(errLower, "idx_fav_email_review") {
		return ErrorInfo{
			Code:    FavouriteAlreadyExists,
			Message: "this review is already in your favourites",
		}
	}
	if strings.Contains(errLower, "categories") || strings.Contains(errLower, "idx_categories_name") {
		return ErrorInfo{
			Code:    CategoryAlreadyExists,
			Message: "a category with this name already exists",
		}
	}
	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "this record already exists",
	}
}

func parseForeignKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "still referenced") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "this record is referenced by other data and cannot be deleted",
		}
	}
	if strings.Contains(errLower, "restaurant_id") {
		return ErrorInfo{
			Code:    RestaurantNotFound,
			Message: "referenced restaurant does not exist",
		}
	}
	if strings.Contains(errLower, "menu_id") {
		return ErrorInfo{
			Code:    MenuItemNotFound,
			Message: "referenced menu item does not exist",
		}
	}
	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "referenced record does not exist",
	}
}

// ParseAndRespond parses the error and writes the standard error body with
// the given status code.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}

func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "restaurant"):
		return "restaurant not found"
	case strings.Contains(contextLower, "menu"):
		return "menu item not found"
	case strings.Contains(contextLower, "review"):
		return "review not found"
	case strings.Contains(contextLower, "user"):
		return "user not found"
	case strings.Contains(contextLower, "post"):
		return "post not found"
	case strings.Contains(contextLower, "category"):
		return "category not found"
	case strings.Contains(contextLower, "favourite"):
		return "favourite not found"
	}
	return "requested record not found"
}
