package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/handler/http/dto"
	"github.com/tuiter/tuiter/internal/handler/http/middleware"
	"github.com/tuiter/tuiter/internal/usecase"
)

// selfAlias stands for the session user in :uid path parameters.
const selfAlias = "me"

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// sessionUserID is the identity attached by middleware.OptionalAuth, if any.
func sessionUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// resolveUserID turns the :uid parameter into a concrete user id, replacing
// "me" with the session identity.
func resolveUserID(c *gin.Context) (string, error) {
	uid := c.Param("uid")
	if uid != selfAlias {
		return uid, nil
	}
	if id := sessionUserID(c); id != "" {
		return id, nil
	}
	return "", usecase.ErrUnresolvedIdentity
}

// statusFor maps use case and store errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUnresolvedIdentity),
		errors.Is(err, contract.ErrTuitNotFound),
		errors.Is(err, contract.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidReactionKind):
		return http.StatusBadRequest
	case errors.Is(err, contract.ErrDuplicateUser),
		errors.Is(err, contract.ErrDuplicateReaction):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal failures are not
// echoed to the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		ErrorHandler(c, status, "internal server error")
		return
	}
	ErrorHandler(c, status, err.Error())
}
