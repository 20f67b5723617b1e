package middlewares

import (
	"strings"

	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie carries the token for browser clients.
	TokenCookie = "access_token"
	claimsKey   = "claims"
)

type TokenValidator interface {
	Validate(token string) (*services.Claims, error)
}

type AuthMiddleware struct {
	tokens TokenValidator
}

func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth accepts a bearer header first and the access_token cookie second.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Token is missing")
			return
		}
		claims, err := m.tokens.Validate(token)
		if err != nil {
			response.Unauthorized(c, services.ErrInvalidToken.Error())
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		if t := strings.TrimSpace(parts[1]); t != "" {
			return t
		}
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// CurrentClaims returns the claims stored by RequireAuth.
func CurrentClaims(c *gin.Context) (*services.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.Claims)
	return claims, ok
}

// CurrentOwner is the caller as an Owner.
func CurrentOwner(c *gin.Context) (models.Owner, bool) {
	claims, ok := CurrentClaims(c)
	if !ok {
		return models.Owner{}, false
	}
	return claims.Owner(), true
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...models.OwnerRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			response.Unauthorized(c, "Token is missing")
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "You do not have access to this resource")
	}
}

// RequireSelf rejects callers whose token id differs from the path parameter.
// Admins pass.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			response.Unauthorized(c, "Token is missing")
			return
		}
		if claims.Role != models.RoleAdmin && claims.ID != c.Param(param) {
			response.Forbidden(c, "You do not have access to this resource")
			return
		}
		c.Next()
	}
}
