package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userContextKey is where RequireUser stores the parsed user ID.
const userContextKey = "finvue-user-id"

// RequireUser parses the X-User-ID header into the request context.
//
// Authentication itself happens upstream, the gateway in front of this
// backend verifies the token and sets the header. A request without the
// header is unauthenticated, a request with a malformed header is a bad
// request.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errUserHeaderMissing.Error()})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, httpError{Error: errUserHeaderInvalid.Error()})
			return
		}

		c.Set(userContextKey, id)
		c.Next()
	}
}

// currentUser returns the user ID that RequireUser stored.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(userContextKey).(uuid.UUID)
}
