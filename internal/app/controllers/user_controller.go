package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
)

// UserController handles profile updates.
type UserController struct {
	storage storage.Storage
}

// NewUserController creates a new user controller
func NewUserController(store storage.Storage) *UserController {
	return &UserController{storage: store}
}

// UpdateProfile handles PATCH /api/user. Only the fields present in
// the body change; username, email, and password are immutable here.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	user, err := uc.storage.UpdateUser(c.Request.Context(), userID, &update)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if user == nil {
		middleware.HandleAPIError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}
