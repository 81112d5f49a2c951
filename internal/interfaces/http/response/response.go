package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "collabhub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel errors from the domain layer are
// mapped to their HTTP shape; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "Invalid email or password", err)
	case errors.Is(err, domainerrors.ErrEmailNotVerified):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeForbidden, "Email not verified", err)
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized("Token has expired")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Forbidden")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest("Invalid request")
	default:
		return domainerrors.InternalError(err)
	}
}
