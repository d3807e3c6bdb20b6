package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/models"
	"github.com/engbowl/engbowl/internal/app/models/dto"
	"github.com/engbowl/engbowl/internal/app/storage"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/pkg/apperrors"
	"github.com/engbowl/engbowl/internal/pkg/logger"
)

// MentorController handles the mentor directory.
type MentorController struct {
	storage storage.Storage
}

// NewMentorController creates a new mentor controller
func NewMentorController(store storage.Storage) *MentorController {
	return &MentorController{storage: store}
}

// ListMentors handles GET /api/mentors. Each mentor is returned with
// its user profile embedded; a mentor whose user record is missing is
// kept with a nil user rather than dropped.
func (mc *MentorController) ListMentors(c *gin.Context) {
	var (
		mentors []models.Mentor
		err     error
	)

	if expertise := c.Query("expertise"); expertise != "" {
		mentors, err = mc.storage.GetMentorsByExpertise(c.Request.Context(), expertise)
	} else {
		mentors, err = mc.storage.GetMentors(c.Request.Context())
	}

	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	for i := range mentors {
		user, err := mc.storage.GetUser(c.Request.Context(), mentors[i].UserID)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		if user == nil {
			logger.Warn().Int64("mentorID", mentors[i].ID).Int64("userID", mentors[i].UserID).
				Msg("Mentor references missing user")
		}
		mentors[i].User = user
	}

	c.JSON(http.StatusOK, mentors)
}

// CreateMentor handles POST /api/mentors. The profile belongs to the
// authenticated user.
func (mc *MentorController) CreateMentor(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	mentor, err := mc.storage.CreateMentor(c.Request.Context(), &models.Mentor{
		UserID:            userID,
		Company:           req.Company,
		Position:          req.Position,
		YearsOfExperience: req.YearsOfExperience,
		Expertise:         req.Expertise,
		Availability:      req.Availability,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	mentor.User, err = mc.storage.GetUser(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mentor)
}
