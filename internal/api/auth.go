package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
	"github.com/chefincasa/backend/internal/types"
)

const authCookieMaxAge = 24 * 60 * 60

// AuthHandler serves registration, login and account endpoints. Login and
// register set the auth token in an httpOnly cookie; clients that prefer the
// Authorization header can use the token from the response body.
type AuthHandler struct {
	auth         *service.AuthService
	rateLimiter  *middleware.RateLimiter
	cookieSecure bool
}

func NewAuthHandler(auth *service.AuthService, rateLimiter *middleware.RateLimiter, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, rateLimiter: rateLimiter, cookieSecure: cookieSecure}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	chefs := router.Group("/chefs")
	{
		chefs.POST("/register", h.Register)
		chefs.POST("/login", h.Login)
		chefs.POST("/logout", h.Logout)
	}

	account := router.Group("/chefs")
	account.Use(middleware.AuthMiddleware(h.auth))
	{
		account.GET("/me", h.Me)
		account.PUT("/change-password", h.rateLimiter.Middleware(), h.ChangePassword)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	chef, token, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	h.setAuthCookie(c, token)
	respond(c, http.StatusCreated, gin.H{"chef": chef, "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	chef, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	h.setAuthCookie(c, token)
	respond(c, http.StatusOK, gin.H{"chef": chef, "token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.cookieSecure, true)
	respond(c, http.StatusOK, gin.H{"message": "logout effettuato"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	chef, err := h.auth.Me(c.Request.Context(), principal.ChefID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, chef)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, _ := middleware.CurrentPrincipal(c)

	var req types.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), principal.ChefID, req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "password aggiornata"})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, authCookieMaxAge, "/", "", h.cookieSecure, true)
}
