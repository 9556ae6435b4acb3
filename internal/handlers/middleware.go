package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "token"
	userIDKey     = "userId"
)

// sessionMiddleware is the authorization gate: it resolves the session cookie
// into a user id or short-circuits with 401. The reason a token was rejected
// is never surfaced to the client.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "not authenticated",
		})
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// currentUserID reads the authenticated user id attached by the session
// middleware. It is the only source of truth for ownership scoping; ids in
// request payloads are never trusted.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
