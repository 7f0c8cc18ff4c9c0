package api

import (
	"errors"
	"net/http"

	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// errSharerMissing only fires when a route skips the identity middleware,
// which is a wiring bug rather than a client error.
var errSharerMissing = errors.New("sharer id missing from context")

type errorMapping struct {
	sentinel error
	status   int
	message  string
}

// Not-found style responses deliberately hide resource existence from
// callers who are neither the booker nor the owner.
var domainErrorMappings = []errorMapping{
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrItemNotFound, http.StatusNotFound, "Item not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrSelfBooking, http.StatusNotFound, "Item not found"},
	{errs.ErrNotAuthorized, http.StatusNotFound, "Booking not found"},
	{errs.ErrNotOwner, http.StatusForbidden, "Only the item owner may perform this action"},
	{errs.ErrItemNotAvailable, http.StatusBadRequest, "Item is not available for booking"},
	{errs.ErrInvalidTimeWindow, http.StatusBadRequest, "Invalid booking time window"},
	{errs.ErrAlreadyDecided, http.StatusBadRequest, "Booking has already been decided"},
	{errs.ErrUnsupportedState, http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS"},
	{errs.ErrInvalidPagination, http.StatusBadRequest, "Invalid pagination parameters"},
	{errs.ErrNotEndedBooking, http.StatusBadRequest, "No finished booking of this item by the caller"},
	{errs.ErrEmptyComment, http.StatusBadRequest, "Comment text must not be empty"},
	{errs.ErrDuplicateEmail, http.StatusConflict, "Email is already in use"},
	{user.ErrEmptyName, http.StatusBadRequest, "Name must not be empty"},
	{user.ErrInvalidEmail, http.StatusBadRequest, "Invalid email address"},
	{item.ErrEmptyItemName, http.StatusBadRequest, "Item name must not be empty"},
	{item.ErrEmptyItemDescription, http.StatusBadRequest, "Item description must not be empty"},
}

func abortDomainError(c *gin.Context, err error) {
	for _, m := range domainErrorMappings {
		if errors.Is(err, m.sentinel) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
