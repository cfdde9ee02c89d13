// Package auth guards the admin API. Sessions are issued elsewhere (the
// platform's credential/OTP provider); this middleware only resolves the
// bearer token to a user and checks the role.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/setu-platform/setu-admin/internal/models"
)

// AdminRole is the role marker protected views require.
const AdminRole = "ADMIN"

// sessionKey is where the middleware stores the resolved session in the
// request context.
const sessionKey = "session"

// SessionInfo is what handlers see: the shape mirrors the session object
// the dashboard already consumes.
type SessionInfo struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Image  string `json:"image"`
}

// RequireAdmin resolves the Authorization bearer token against the session
// table and rejects anything that is not a live admin session.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		var sess models.Session
		err := db.WithContext(c.Request.Context()).
			Preload("User").
			First(&sess, "token = ?", token).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session"})
			return
		}
		if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}
		if sess.User.Role != AdminRole || sess.User.IsBlocked || sess.User.IsDeleted {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(sessionKey, SessionInfo{
			UserID: sess.User.ID,
			Role:   sess.User.Role,
			Name:   strings.TrimSpace(sess.User.FirstName + " " + sess.User.LastName),
			Image:  sess.User.Image,
		})
		c.Next()
	}
}

// SessionFrom returns the session the middleware attached, if any.
func SessionFrom(c *gin.Context) (SessionInfo, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return SessionInfo{}, false
	}
	info, ok := v.(SessionInfo)
	return info, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(header)
}
