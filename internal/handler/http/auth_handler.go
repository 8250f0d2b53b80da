package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/handler/http/dto"
	"github.com/tuiter/tuiter/internal/handler/http/middleware"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// AuthHandler is the session provider: it issues the access tokens that
// middleware.OptionalAuth later resolves to a user id.
type AuthHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewAuthHandler(userUsecase usecasecontract.IUserUseCase) *AuthHandler {
	return &AuthHandler{userUsecase: userUsecase}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, token, err := h.userUsecase.Register(c.Request.Context(), req.ToEntity(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AuthResponse{User: user, AccessToken: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AuthResponse{User: user, AccessToken: token})
}

// Profile returns the session user, 403 without a session.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := sessionUserID(c)
	if userID == "" {
		ErrorHandler(c, http.StatusForbidden, "not logged in")
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusForbidden, "not logged in")
			return
		}
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// Logout revokes the presented token. It succeeds even without one.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextAccessToken)
	if token == "" {
		token = middleware.BearerToken(c)
	}
	if err := h.userUsecase.Logout(c.Request.Context(), token); err != nil {
		_ = c.Error(err)
	}
	c.Status(http.StatusOK)
}
