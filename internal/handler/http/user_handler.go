package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuiter/tuiter/internal/handler/http/dto"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	GetAllUsers(*gin.Context)
	GetUser(*gin.Context)
	CreateUser(*gin.Context)
	UpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
	DeleteAllUsers(*gin.Context)
	DeleteUsersByUsername(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userUsecase.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// GetUser handles retrieving user by ID; "me" resolves to the session user.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.CreateUser(c.Request.Context(), req.ToEntity(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.UpdateUser(c.Request.Context(), userID, req.ToUpdates())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	deleted, err := h.userUsecase.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewDeleteResponse(deleted))
}

func (h *UserHandler) DeleteAllUsers(c *gin.Context) {
	deleted, err := h.userUsecase.DeleteAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewDeleteResponse(deleted))
}

func (h *UserHandler) DeleteUsersByUsername(c *gin.Context) {
	deleted, err := h.userUsecase.DeleteUsersByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewDeleteResponse(deleted))
}
