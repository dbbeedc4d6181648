package handlers

import (
	"errors"
	"net/http"
	"strings"

	"estate-portal/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// Authenticate resolves an optional Bearer session token into the
// request's user. Requests without a token pass through anonymous;
// bad or expired tokens are rejected so clients notice stale sessions.
func (h *Handler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		user, err := h.db.GetSessionUser(token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
				return
			}
			h.log.WithError(err).Error("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. Must run after Authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests from non-staff accounts. Must run
// after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !user.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff access required"})
			return
		}
		c.Next()
	}
}

// RateLimit throttles a route per client IP.
func (h *Handler) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated user, or nil for anonymous
// requests.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
