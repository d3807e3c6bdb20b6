// Package storage defines the data-access contract shared by the
// ephemeral in-memory backend and the Postgres-backed durable
// backend. Callers depend only on the Storage interface; which
// backend is active is a deployment decision made at bootstrap.
package storage

import (
	"context"

	"github.com/engbowl/engbowl/internal/app/models"
)

// Storage is the uniform data-access contract. Lookups return
// (nil, nil) when the id is unknown; errors are reserved for
// infrastructure failures.
type Storage interface {
	// User operations
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error)

	// Resource operations
	GetResources(ctx context.Context) ([]models.Resource, error)
	GetResourcesByDiscipline(ctx context.Context, discipline string) ([]models.Resource, error)
	GetResourcesBySkillLevel(ctx context.Context, skillLevel string) ([]models.Resource, error)
	GetResourceByID(ctx context.Context, id int64) (*models.Resource, error)
	CreateResource(ctx context.Context, resource *models.Resource) (*models.Resource, error)

	// Discussion bowl operations
	GetDiscussionBowls(ctx context.Context) ([]models.DiscussionBowl, error)
	GetDiscussionBowlByID(ctx context.Context, id int64) (*models.DiscussionBowl, error)
	CreateDiscussionBowl(ctx context.Context, bowl *models.DiscussionBowl) (*models.DiscussionBowl, error)

	// Discussion topic operations. CreateDiscussionTopic increments
	// the parent bowl's postCount by exactly 1 as part of the same
	// logical operation.
	GetTopicsByBowlID(ctx context.Context, bowlID int64) ([]models.DiscussionTopic, error)
	CreateDiscussionTopic(ctx context.Context, topic *models.DiscussionTopic) (*models.DiscussionTopic, error)

	// Job listing operations. List queries return active rows only;
	// fetch by id does not filter.
	GetJobListings(ctx context.Context) ([]models.JobListing, error)
	GetJobListingsByDiscipline(ctx context.Context, discipline string) ([]models.JobListing, error)
	GetJobListingByID(ctx context.Context, id int64) (*models.JobListing, error)
	CreateJobListing(ctx context.Context, job *models.JobListing) (*models.JobListing, error)

	// Mentor operations. Expertise filtering is a case-insensitive
	// substring match against any element of the expertise list.
	GetMentors(ctx context.Context) ([]models.Mentor, error)
	GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error)
	GetMentorsByExpertise(ctx context.Context, expertise string) ([]models.Mentor, error)
	CreateMentor(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error)

	// Message operations. GetMessagesBetweenUsers matches either
	// direction of sender/receiver and orders by creation time
	// ascending.
	GetMessagesBetweenUsers(ctx context.Context, userID1, userID2 int64) ([]models.Message, error)
	CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error)
	MarkMessageAsRead(ctx context.Context, id int64) (*models.Message, error)
}
