package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a booking request for an item; starts in WAITING state
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking; item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter 'approved' must be true or false", nil)
		return
	}

	view, err := h.cmds.Decide(c.Request.Context(), id, requesterID, approved)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.Get(c.Request.Context(), id, requesterID)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description Bookings made by the calling user, filtered by state bucket
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings for owned items
// @Description Bookings of items owned by the calling user, filtered by state bucket
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Calling user ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwnedItems(c *gin.Context) {
	h.list(c, h.q.ListByOwnedItems)
}

type listFn func(ctx context.Context, requesterID uuid.UUID, bucket string, offset, limit int) ([]*queries.BookingView, error)

func (h *BookingHandler) list(c *gin.Context, fn listFn) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errSharerMissing, "Internal server error", nil)
		return
	}

	bucket := c.DefaultQuery("state", "ALL")

	offset, err := parseIntParam(c, "from", 0)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter 'from' must be an integer", nil)
		return
	}
	limit, err := parseIntParam(c, "size", queries.DefaultPageSize)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter 'size' must be an integer", nil)
		return
	}

	views, err := fn(c.Request.Context(), requesterID, bucket, offset, limit)
	if err != nil {
		abortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

func parseIntParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("not an integer: " + raw)
	}
	return v, nil
}
