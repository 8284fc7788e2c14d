package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"reservation-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxStaffNameKey = "staff_name"
	ctxStaffRoleKey = "staff_role"
)

// AuthMiddleware protects the staff reservation route. Validation is
// stateless; there is no session store behind it.
type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "unauthorized",
			})
			c.Abort()
			return
		}

		staffName, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Staff token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "unauthorized",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffNameKey, staffName)
		c.Set(ctxStaffRoleKey, role)
		c.Next()
	}
}

func GetStaffName(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ctxStaffNameKey); exists {
		if name, ok := v.(string); ok && name != "" {
			return name, true
		}
	}
	return "", false
}
