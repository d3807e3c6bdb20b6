package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
)

// MessageController handles direct messaging between users.
type MessageController struct {
	storage storage.Storage
}

// NewMessageController creates a new message controller
func NewMessageController(store storage.Storage) *MessageController {
	return &MessageController{storage: store}
}

// GetConversation handles GET /api/messages/:id, returning the
// conversation between the authenticated user and the named user,
// oldest first.
func (mc *MessageController) GetConversation(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	otherID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	messages, err := mc.storage.GetMessagesBetweenUsers(c.Request.Context(), userID, otherID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessage handles POST /api/messages. The sender is always the
// authenticated user regardless of the body.
func (mc *MessageController) SendMessage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}
	if req.ReceiverID < 1 {
		middleware.HandleAPIError(c, apperrors.NewValidationError("receiverId", "receiverId is required"))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		middleware.HandleAPIError(c, apperrors.NewValidationError("content", "content is required"))
		return
	}

	receiver, err := mc.storage.GetUser(c.Request.Context(), req.ReceiverID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if receiver == nil {
		middleware.HandleAPIError(c, apperrors.ErrNotFound)
		return
	}

	message, err := mc.storage.CreateMessage(c.Request.Context(), &models.Message{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// MarkRead handles PATCH /api/messages/:id/read
func (mc *MessageController) MarkRead(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	message, err := mc.storage.MarkMessageAsRead(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if message == nil {
		middleware.HandleAPIError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, message)
}
