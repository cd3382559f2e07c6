package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionTokenKey = "token"

// RequireSession rejects requests without a verified session token.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionTokenKey) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "UNAUTHORIZED", "message": "로그인이 필요합니다"},
			})
			return
		}
		c.Next()
	}
}

// SetToken stores the session token after a successful PIN check.
func SetToken(c *gin.Context, token string) error {
	session := sessions.Default(c)
	session.Set(sessionTokenKey, token)
	return session.Save()
}

// ClearToken drops the session.
func ClearToken(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
