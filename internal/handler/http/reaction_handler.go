package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuiter/tuiter/internal/domain/entity"
	"github.com/tuiter/tuiter/internal/handler/http/dto"
	usecasecontract "github.com/tuiter/tuiter/internal/usecase/contract"
)

// ReactionHandler serves the routes of one reaction kind. The router mounts
// one instance for likes and one for dislikes.
type ReactionHandler struct {
	reactionUsecase usecasecontract.IReactionUseCase
	kind            entity.ReactionKind
}

func NewReactionHandler(reactionUsecase usecasecontract.IReactionUseCase, kind entity.ReactionKind) *ReactionHandler {
	return &ReactionHandler{reactionUsecase: reactionUsecase, kind: kind}
}

// ListTuitsReactedByUser handles GET /api/users/:uid/{likes,dislikes}.
func (h *ReactionHandler) ListTuitsReactedByUser(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	tuits, err := h.reactionUsecase.ListTuitsReactedByUser(c.Request.Context(), h.kind, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tuits)
}

// ListReactors handles GET /api/tuits/:tid/{likes,dislikes}.
func (h *ReactionHandler) ListReactors(c *gin.Context) {
	reactions, err := h.reactionUsecase.ListReactorsForTuit(c.Request.Context(), h.kind, c.Param("tid"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToReactionResponses(reactions))
}

// React handles POST /api/users/:uid/{likes,dislikes}/:tid.
func (h *ReactionHandler) React(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	reaction, err := h.reactionUsecase.React(c.Request.Context(), h.kind, userID, c.Param("tid"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToReactionResponse(reaction))
}

// Toggle handles PUT /api/users/:uid/{likes,dislikes}/:tid. It answers with a
// bare status: 200 on success and 404 for any failure, including a missing
// session behind "me".
func (h *ReactionHandler) Toggle(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	if _, err := h.reactionUsecase.Toggle(c.Request.Context(), h.kind, userID, c.Param("tid")); err != nil {
		_ = c.Error(err)
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// Unreact handles DELETE /api/users/:uid/{unlikes,undislikes}/:tid.
func (h *ReactionHandler) Unreact(c *gin.Context) {
	userID, err := resolveUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	deleted, err := h.reactionUsecase.Unreact(c.Request.Context(), h.kind, userID, c.Param("tid"))
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.NewDeleteResponse(deleted))
}
