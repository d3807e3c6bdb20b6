// Package routes maps the HTTP surface onto the controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engbowl/engbowl/internal/app/controllers"
	"github.com/engbowl/engbowl/internal/middleware"
	"github.com/engbowl/engbowl/internal/session"
)

// Controllers bundles every controller the router needs.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Resource   *controllers.ResourceController
	Discussion *controllers.DiscussionController
	Job        *controllers.JobController
	Mentor     *controllers.MentorController
	Message    *controllers.MessageController
}

// SetupRoutes registers all endpoints. Reads of public content need no
// session; anything that writes on behalf of a user sits behind
// RequireAuth.
func SetupRoutes(router *gin.Engine, ctrl Controllers, sessions session.Store, cookieName string) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Authentication
		api.POST("/register", ctrl.Auth.Register)
		api.POST("/login", ctrl.Auth.Login)
		api.POST("/logout", ctrl.Auth.Logout)

		// Public catalog reads
		api.GET("/resources", ctrl.Resource.ListResources)
		api.GET("/resources/:id", ctrl.Resource.GetResource)
		api.GET("/discussion-bowls", ctrl.Discussion.ListBowls)
		api.GET("/discussion-bowls/:id", ctrl.Discussion.GetBowl)
		api.GET("/discussion-bowls/:id/topics", ctrl.Discussion.ListTopics)
		api.GET("/jobs", ctrl.Job.ListJobs)
		api.GET("/jobs/:id", ctrl.Job.GetJob)
		api.GET("/mentors", ctrl.Mentor.ListMentors)
	}

	authed := router.Group("/api")
	authed.Use(middleware.RequireAuth(sessions, cookieName))
	{
		authed.GET("/user", ctrl.Auth.CurrentUser)
		authed.PATCH("/user", ctrl.User.UpdateProfile)

		authed.POST("/resources", ctrl.Resource.CreateResource)
		authed.POST("/discussion-bowls", ctrl.Discussion.CreateBowl)
		authed.POST("/discussion-bowls/:id/topics", ctrl.Discussion.CreateTopic)
		authed.POST("/jobs", ctrl.Job.CreateJob)
		authed.POST("/mentors", ctrl.Mentor.CreateMentor)

		// gin requires one wildcard name per segment, so the
		// conversation partner id is also :id here.
		authed.GET("/messages/:id", ctrl.Message.GetConversation)
		authed.POST("/messages", ctrl.Message.SendMessage)
		authed.PATCH("/messages/:id/read", ctrl.Message.MarkRead)
	}
}
