package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuiter/tuiter/internal/handler/http/dto"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

type TuitHandler struct {
	tuitUsecase usecasecontract.ITuitUseCase
}

func NewTuitHandler(tuitUsecase usecasecontract.ITuitUseCase) *TuitHandler {
	return &TuitHandler{tuitUsecase: tuitUsecase}
}

func (h *TuitHandler) GetTuits(c *gin.Context) {
	tuits, err := h.tuitUsecase.GetTuits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tuits)
}

func (h *TuitHandler) GetTuit(c *gin.Context) {
	tuit, err := h.tuitUsecase.GetTuitByID(c.Request.Context(), c.Param("tid"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tuit)
}

func (h *TuitHandler) GetTuitsByUser(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	tuits, err := h.tuitUsecase.GetTuitsByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tuits)
}

func (h *TuitHandler) CreateTuit(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req dto.CreateTuitRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	tuit, err := h.tuitUsecase.CreateTuit(c.Request.Context(), userID, req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, tuit)
}

func (h *TuitHandler) UpdateTuit(c *gin.Context) {
	var req dto.UpdateTuitRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.tuitUsecase.UpdateTuit(c.Request.Context(), c.Param("tid"), req.ToUpdates()); err != nil {
		respondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Tuit updated successfully")
}

func (h *TuitHandler) DeleteTuit(c *gin.Context) {
	deleted, err := h.tuitUsecase.DeleteTuit(c.Request.Context(), c.Param("tid"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewDeleteResponse(deleted))
}
