package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefincasa/backend/internal/models"
	"github.com/chefincasa/backend/internal/types"
)

type fakeValidator struct {
	principal *types.Principal
}

func (f *fakeValidator) ValidateToken(token string) (*types.Principal, error) {
	if token != "good-token" {
		return nil, errors.New("invalid token")
	}
	return f.principal, nil
}

func newAuthTestRouter(validator TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(validator), func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"chefId": p.ChefID})
	})
	return router
}

func TestAuthMiddlewareCookie(t *testing.T) {
	chefID := uuid.New()
	router := newAuthTestRouter(&fakeValidator{principal: &types.Principal{ChefID: chefID, Role: models.RoleChef}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "good-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), chefID.String())
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	chefID := uuid.New()
	router := newAuthTestRouter(&fakeValidator{principal: &types.Principal{ChefID: chefID, Role: models.RoleChef}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	router := newAuthTestRouter(&fakeValidator{})

	// No token at all
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func newScopeTestRouter(validator TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/chefs/:chefId/dashboard", AuthMiddleware(validator), ChefScope(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"chefId": ScopedChefID(c)})
	})
	return router
}

func doScoped(router *gin.Engine, chefID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/chefs/"+chefID+"/dashboard", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChefScopeOwnResource(t *testing.T) {
	chefID := uuid.New()
	router := newScopeTestRouter(&fakeValidator{principal: &types.Principal{ChefID: chefID, Role: models.RoleChef}})

	w := doScoped(router, chefID.String())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), chefID.String())
}

func TestChefScopeForeignResource(t *testing.T) {
	router := newScopeTestRouter(&fakeValidator{principal: &types.Principal{ChefID: uuid.New(), Role: models.RoleChef}})

	w := doScoped(router, uuid.NewString())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChefScopeAdminOverride(t *testing.T) {
	router := newScopeTestRouter(&fakeValidator{principal: &types.Principal{ChefID: uuid.New(), Role: models.RoleAdmin}})

	target := uuid.New()
	w := doScoped(router, target.String())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), target.String(), "admin acts on the path chef, not itself")
}

func TestChefScopeBadID(t *testing.T) {
	router := newScopeTestRouter(&fakeValidator{principal: &types.Principal{ChefID: uuid.New(), Role: models.RoleChef}})

	w := doScoped(router, "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
