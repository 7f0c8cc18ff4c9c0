package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q}
}

// @Summary Create item
// @Description Create an item owned by the calling user
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), ownerID, commands.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
	})
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Item detail with comments; booking summary is attached only for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	view, err := h.q.Get(c.Request.Context(), id, requesterID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Description All items owned by the calling user, each with booking summary and comments
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Success 200 {array} resdto.ItemResponse
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Update item
// @Description Partial update of name, description and availability; owner only
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.PatchItemRequest true "Patch item request"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [patch]
func (h *ItemHandler) Patch(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.PatchItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Patch(c.Request.Context(), id, requesterID, commands.PatchItemParams{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Search items
// @Description Text search over name and description of available items; blank query yields an empty list
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param text query string false "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on item
// @Description Allowed only after a finished approved booking of the item by the caller
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Create comment request"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/comment [post]
func (h *ItemHandler) Comment(c *gin.Context) {
	authorID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.comments.Create(c.Request.Context(), id, authorID, req.Text)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
