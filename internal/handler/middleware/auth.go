package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"coworking-booking/internal/handler/httperr"
	"coworking-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxSpaceIDKey = "space_id"

// TokenValidator resolves a bearer token to the claims of the calling space.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.Body{
				Kind:    "authentication",
				Code:    "TOKEN_REQUIRED",
				Message: "Access token required",
			}, nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.Body{
				Kind:    "authentication",
				Code:    "INVALID_TOKEN",
				Message: "Invalid or expired token",
			}, nil)
			return
		}

		SetSpaceID(c, claims.SpaceID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < len("Bearer ") || !strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func SetSpaceID(c *gin.Context, spaceID int64) {
	c.Set(ctxSpaceIDKey, spaceID)
}

func GetSpaceID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxSpaceIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
