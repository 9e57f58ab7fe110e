package middleware

import (
	"net/http"

	"gearshare/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdentityHeader names the trusted header carrying the acting user's ID.
// The gateway in front of this service authenticates the caller and
// injects it; the service itself performs no credential checks.
const IdentityHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

// RequireIdentity rejects requests without a well-formed user ID header.
// Whether that user exists is decided per operation, so a stale ID still
// reaches the usecase layer and maps to not-found there.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(IdentityHeader)
		if raw == "" {
			httperr.Abort(c, http.StatusBadRequest, nil, "X-Sharer-User-Id header required")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.Abort(c, http.StatusBadRequest, err, "Invalid X-Sharer-User-Id header format")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
