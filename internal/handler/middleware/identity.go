package middleware

import (
	"errors"
	"net/http"

	"shareit/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the calling user's identity. The gateway in front of
// this service authenticates the user and forwards only the ID.
const SharerHeader = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_id"

var errSharerHeaderMissing = errors.New("sharer header missing")

// RequireSharer rejects requests without a parseable caller ID and stores the
// parsed UUID in the request context for handlers.
func RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errSharerHeaderMissing, SharerHeader+" header required", nil)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+SharerHeader+" header", nil)
			return
		}

		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
