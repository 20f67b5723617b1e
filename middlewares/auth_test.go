package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"BabyNest/models"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuthMiddleware(tokens)
	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		owner, _ := CurrentOwner(c)
		c.JSON(http.StatusOK, owner)
	})
	r.GET("/admin", auth.RequireAuth(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/shoppers/:ownerId", auth.RequireAuth(), RequireSelf("ownerId"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func issue(t *testing.T, tokens *services.TokenService, role models.OwnerRole) string {
	t.Helper()
	token, err := tokens.Generate(models.Account{ID: "acc-1", Role: role, Name: "Ann", Email: "ann@example.com"})
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)
	valid := issue(t, tokens, models.RoleParent)

	tests := []struct {
		name       string
		prepare    func(req *http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing token",
			prepare:    func(req *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token is missing",
		},
		{
			name: "bearer header",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+valid)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"acc-1"`,
		},
		{
			name: "cookie fallback",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: TokenCookie, Value: valid})
			},
			wantStatus: http.StatusOK,
			wantBody:   `"role":"PARENT"`,
		},
		{
			name: "tampered token",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+valid+"x")
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token is invalid or expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)

	for role, want := range map[models.OwnerRole]int{
		models.RoleAdmin:  http.StatusNoContent,
		models.RoleParent: http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}

func TestRequireSelf(t *testing.T) {
	tokens := services.NewTokenService("secret", time.Hour)
	r := newRouter(tokens)
	token := issue(t, tokens, models.RoleRelative)

	for path, want := range map[string]int{
		"/shoppers/acc-1": http.StatusNoContent,
		"/shoppers/other": http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, path)
	}
}
