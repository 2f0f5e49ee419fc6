package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forgeapi/notes/internal/server/auth"
)

// subjectKey is the gin context key the middleware stores the authenticated
// subject under.
const subjectKey = "auth_subject"

// authRequired returns a middleware that rejects requests without a valid
// token before the downstream handler runs. The token is taken from the
// Authorization header, with or without the "Bearer " prefix. On success the
// token's subject is attached to the request context.
func (s *RESTServer) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, failureResponse{Success: false, Message: "unauthorized"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		subject, err := auth.GetSubjectFromToken(token, s.jwtSecret)
		if err != nil {
			// Tampered, malformed and expired tokens are rejected alike.
			c.AbortWithStatusJSON(http.StatusUnauthorized, failureResponse{Success: false, Message: "unauthorized"})
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// Subject returns the authenticated user name stored by authRequired.
// The second return value is false on routes the middleware did not run on.
func Subject(c *gin.Context) (string, bool) {
	v, ok := c.Get(subjectKey)
	if !ok {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}
