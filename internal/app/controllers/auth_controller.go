// Package controllers holds the gin HTTP handlers. Controllers bind
// and translate; rules live in services and storage.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/app/services"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/auth"
)

// CookieSettings describes how the session cookie is written.
type CookieSettings struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

// AuthController handles registration, login, logout, and the
// current-user endpoint.
type AuthController struct {
	authService *services.AuthService
	cookie      CookieSettings
}

// NewAuthController creates a new authentication controller
func NewAuthController(authService *services.AuthService, cookie CookieSettings) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
	}
}

// Register handles POST /api/register
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	user, token, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	ac.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	user, token, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	ac.setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/logout. Logging out without a session is
// not an error.
func (ac *AuthController) Logout(c *gin.Context) {
	token, ok := tokenFromRequest(c, ac.cookie.Name)
	if ok {
		if err := ac.authService.Logout(c.Request.Context(), token); err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
	}

	c.SetCookie(ac.cookie.Name, "", -1, "/", "", ac.cookie.Secure, true)
	c.Status(http.StatusOK)
}

// CurrentUser handles GET /api/user
func (ac *AuthController) CurrentUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	user, err := ac.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(ac.cookie.Name, token, ac.cookie.MaxAge, "/", "", ac.cookie.Secure, true)
}

func tokenFromRequest(c *gin.Context, cookieName string) (string, bool) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return auth.ExtractBearerToken(c.GetHeader("Authorization"))
}
