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

// JobController handles the job listing board.
type JobController struct {
	storage storage.Storage
}

// NewJobController creates a new job controller
func NewJobController(store storage.Storage) *JobController {
	return &JobController{storage: store}
}

// ListJobs handles GET /api/jobs. Only active listings are returned.
func (jc *JobController) ListJobs(c *gin.Context) {
	var (
		jobs []models.JobListing
		err  error
	)

	if discipline := c.Query("discipline"); discipline != "" {
		jobs, err = jc.storage.GetJobListingsByDiscipline(c.Request.Context(), discipline)
	} else {
		jobs, err = jc.storage.GetJobListings(c.Request.Context())
	}

	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob handles GET /api/jobs/:id. Fetch by id ignores the active
// flag.
func (jc *JobController) GetJob(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	job, err := jc.storage.GetJobListingByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if job == nil {
		middleware.HandleAPIError(c, apperrors.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob handles POST /api/jobs
func (jc *JobController) CreateJob(c *gin.Context) {
	var req dto.CreateJobListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	job, err := jc.storage.CreateJobListing(c.Request.Context(), &models.JobListing{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Discipline:      req.Discipline,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		ContactEmail:    req.ContactEmail,
		ApplicationURL:  req.ApplicationURL,
		ExpiresAt:       req.ExpiresAt,
		IsActive:        true,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}
