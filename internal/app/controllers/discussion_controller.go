package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
)

// DiscussionController handles discussion bowls and their topics.
type DiscussionController struct {
	storage storage.Storage
}

// NewDiscussionController creates a new discussion controller
func NewDiscussionController(store storage.Storage) *DiscussionController {
	return &DiscussionController{storage: store}
}

// ListBowls handles GET /api/discussion-bowls
func (dc *DiscussionController) ListBowls(c *gin.Context) {
	bowls, err := dc.storage.GetDiscussionBowls(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, bowls)
}

// GetBowl handles GET /api/discussion-bowls/:id
func (dc *DiscussionController) GetBowl(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	bowl, err := dc.storage.GetDiscussionBowlByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if bowl == nil {
		middleware.HandleAPIError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, bowl)
}

// CreateBowl handles POST /api/discussion-bowls
func (dc *DiscussionController) CreateBowl(c *gin.Context) {
	var req dto.CreateBowlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	bowl, err := dc.storage.CreateDiscussionBowl(c.Request.Context(), &models.DiscussionBowl{
		Name:        req.Name,
		Description: req.Description,
		Discipline:  req.Discipline,
		IsActive:    true,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bowl)
}

// ListTopics handles GET /api/discussion-bowls/:id/topics
func (dc *DiscussionController) ListTopics(c *gin.Context) {
	bowlID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	topics, err := dc.storage.GetTopicsByBowlID(c.Request.Context(), bowlID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// CreateTopic handles POST /api/discussion-bowls/:id/topics. The bowl
// must exist; its post counter moves with the insert.
func (dc *DiscussionController) CreateTopic(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	bowlID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	bowl, err := dc.storage.GetDiscussionBowlByID(c.Request.Context(), bowlID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if bowl == nil {
		middleware.HandleAPIError(c, apperrors.ErrNotFound)
		return
	}

	var req dto.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	topic, err := dc.storage.CreateDiscussionTopic(c.Request.Context(), &models.DiscussionTopic{
		BowlID:   bowlID,
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, topic)
}
