package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engbowl/engbowl/internal/app/models"
)

func TestMemoryStorageSeedData(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	bowls, err := s.GetDiscussionBowls(ctx)
	require.NoError(t, err)
	require.Len(t, bowls, 3)
	assert.Equal(t, "Software Engineering", bowls[0].Name)
	assert.Equal(t, 0, bowls[0].PostCount)
	assert.Equal(t, 0, bowls[0].MemberCount)

	resources, err := s.GetResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 3)
	assert.Equal(t, "Introduction to Python for Engineers", resources[0].Title)

	jobs, err := s.GetJobListings(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "TechCorp", jobs[0].Company)
}

func TestMemoryStorageUserLookups(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, &models.User{
		Username:    "Alice",
		Password:    "hash",
		Email:       "Alice@MIT.edu",
		DisplayName: "Alice A",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byName, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := s.GetUserByEmail(ctx, "alice@mit.EDU")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	missing, err := s.GetUser(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStorageUpdateUser(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, &models.User{
		Username:    "bob",
		Password:    "hash",
		Email:       "bob@mit.edu",
		DisplayName: "Bob",
	})
	require.NoError(t, err)

	bio := "Robotics enthusiast"
	updated, err := s.UpdateUser(ctx, created.ID, &models.UserUpdate{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, bio, *updated.Bio)
	// Untouched fields survive
	assert.Equal(t, "Bob", updated.DisplayName)
	assert.Equal(t, "bob", updated.Username)

	none, err := s.UpdateUser(ctx, 9999, &models.UserUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestMemoryStorageResourceFilters(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	byDiscipline, err := s.GetResourcesByDiscipline(ctx, "electrical engineering")
	require.NoError(t, err)
	require.Len(t, byDiscipline, 1)
	assert.Equal(t, "Circuit Design for IoT Applications", byDiscipline[0].Title)

	bySkill, err := s.GetResourcesBySkillLevel(ctx, models.SkillLevelAdvanced)
	require.NoError(t, err)
	require.Len(t, bySkill, 1)
	assert.Equal(t, "Machine Learning for Predictive Maintenance", bySkill[0].Title)

	none, err := s.GetResourcesByDiscipline(ctx, "Astrology")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStorageTopicCreationBumpsPostCount(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	bowl, err := s.CreateDiscussionBowl(ctx, &models.DiscussionBowl{
		Name:        "Aerospace",
		Description: "Rockets and airframes",
		Discipline:  "Aerospace Engineering",
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, bowl.PostCount)

	for i := 0; i < 3; i++ {
		_, err := s.CreateDiscussionTopic(ctx, &models.DiscussionTopic{
			BowlID:   bowl.ID,
			Title:    "Topic",
			Content:  "Content",
			AuthorID: 1,
		})
		require.NoError(t, err)
	}

	after, err := s.GetDiscussionBowlByID(ctx, bowl.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, 3, after.PostCount)
	assert.Equal(t, 0, after.MemberCount)

	topics, err := s.GetTopicsByBowlID(ctx, bowl.ID)
	require.NoError(t, err)
	assert.Len(t, topics, 3)
}

func TestMemoryStorageJobListingsActiveOnly(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	inactive, err := s.CreateJobListing(ctx, &models.JobListing{
		Title:           "Closed Role",
		Company:         "Dormant Corp",
		Location:        "Remote",
		Description:     "No longer hiring",
		Requirements:    "n/a",
		Discipline:      "Computer Engineering",
		ExperienceLevel: "Entry Level",
		IsActive:        false,
	})
	require.NoError(t, err)

	jobs, err := s.GetJobListings(ctx)
	require.NoError(t, err)
	for _, job := range jobs {
		assert.True(t, job.IsActive)
	}

	byDiscipline, err := s.GetJobListingsByDiscipline(ctx, "computer engineering")
	require.NoError(t, err)
	require.Len(t, byDiscipline, 1)
	assert.Equal(t, "Software Engineer Intern", byDiscipline[0].Title)

	// Fetch by id ignores the active flag
	fetched, err := s.GetJobListingByID(ctx, inactive.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.False(t, fetched.IsActive)
}

func TestMemoryStorageMentorExpertiseFilter(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, err := s.CreateMentor(ctx, &models.Mentor{
		UserID:            1,
		Company:           "TechCorp",
		Position:          "Staff Engineer",
		YearsOfExperience: 10,
		Expertise:         []string{"Machine Learning", "Distributed Systems"},
	})
	require.NoError(t, err)
	_, err = s.CreateMentor(ctx, &models.Mentor{
		UserID:            2,
		Company:           "Engineering Solutions Inc.",
		Position:          "Principal Engineer",
		YearsOfExperience: 15,
		Expertise:         []string{"CAD", "Thermal Analysis"},
	})
	require.NoError(t, err)

	matched, err := s.GetMentorsByExpertise(ctx, "learn")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "TechCorp", matched[0].Company)

	matched, err = s.GetMentorsByExpertise(ctx, "THERMAL")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Engineering Solutions Inc.", matched[0].Company)

	matched, err = s.GetMentorsByExpertise(ctx, "welding")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMemoryStorageMessages(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	first, err := s.CreateMessage(ctx, &models.Message{SenderID: 1, ReceiverID: 2, Content: "hi"})
	require.NoError(t, err)
	assert.False(t, first.IsRead)

	_, err = s.CreateMessage(ctx, &models.Message{SenderID: 2, ReceiverID: 1, Content: "hello back"})
	require.NoError(t, err)
	_, err = s.CreateMessage(ctx, &models.Message{SenderID: 1, ReceiverID: 3, Content: "different thread"})
	require.NoError(t, err)

	// Both directions of the pair, oldest first
	conversation, err := s.GetMessagesBetweenUsers(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, conversation, 2)
	assert.Equal(t, "hi", conversation[0].Content)
	assert.Equal(t, "hello back", conversation[1].Content)

	read, err := s.MarkMessageAsRead(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.True(t, read.IsRead)

	missing, err := s.MarkMessageAsRead(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
