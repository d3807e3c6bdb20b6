package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
)

// ResourceController handles the educational resource catalog.
type ResourceController struct {
	storage storage.Storage
}

// NewResourceController creates a new resource controller
func NewResourceController(store storage.Storage) *ResourceController {
	return &ResourceController{storage: store}
}

// ListResources handles GET /api/resources. When both filters are
// present, discipline wins.
func (rc *ResourceController) ListResources(c *gin.Context) {
	var (
		resources []models.Resource
		err       error
	)

	if discipline := c.Query("discipline"); discipline != "" {
		resources, err = rc.storage.GetResourcesByDiscipline(c.Request.Context(), discipline)
	} else if skillLevel := c.Query("skillLevel"); skillLevel != "" {
		resources, err = rc.storage.GetResourcesBySkillLevel(c.Request.Context(), skillLevel)
	} else {
		resources, err = rc.storage.GetResources(c.Request.Context())
	}

	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// GetResource handles GET /api/resources/:id
func (rc *ResourceController) GetResource(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	resource, err := rc.storage.GetResourceByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if resource == nil {
		middleware.HandleAPIError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// CreateResource handles POST /api/resources
func (rc *ResourceController) CreateResource(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	resource, err := rc.storage.CreateResource(c.Request.Context(), &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		SkillLevel:  req.SkillLevel,
		Discipline:  req.Discipline,
		AuthorID:    userID,
		Duration:    req.Duration,
		Rating:      req.Rating,
		RatingCount: req.RatingCount,
		URL:         req.URL,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// parseIDParam reads a positive integer route parameter. A malformed
// id reads as not-found, matching lookup semantics for ids that could
// never exist.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrNotFound
	}
	return id, nil
}
