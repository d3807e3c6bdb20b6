package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/engbowl/engbowl/internal/app/models"
)

// MemoryStorage is the ephemeral backend: per-entity maps keyed by id
// with monotonically increasing id counters. All state is lost on
// restart. A single RWMutex covers every entity map so that the
// topic-create/bowl-counter pair stays atomic.
type MemoryStorage struct {
	mu sync.RWMutex

	users    map[int64]*models.User
	resource map[int64]*models.Resource
	bowls    map[int64]*models.DiscussionBowl
	topics   map[int64]*models.DiscussionTopic
	jobs     map[int64]*models.JobListing
	mentors  map[int64]*models.Mentor
	messages map[int64]*models.Message

	nextUserID    int64
	nextResource  int64
	nextBowlID    int64
	nextTopicID   int64
	nextJobID     int64
	nextMentorID  int64
	nextMessageID int64
}

// NewMemoryStorage creates the ephemeral backend seeded with the
// demo dataset.
func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{
		users:    make(map[int64]*models.User),
		resource: make(map[int64]*models.Resource),
		bowls:    make(map[int64]*models.DiscussionBowl),
		topics:   make(map[int64]*models.DiscussionTopic),
		jobs:     make(map[int64]*models.JobListing),
		mentors:  make(map[int64]*models.Mentor),
		messages: make(map[int64]*models.Message),

		nextUserID:    1,
		nextResource:  1,
		nextBowlID:    1,
		nextTopicID:   1,
		nextJobID:     1,
		nextMentorID:  1,
		nextMessageID: 1,
	}
	s.seed()
	return s
}

// --- User operations ---

func (s *MemoryStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.users[id]), nil
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	stored.ID = s.nextUserID
	stored.CreatedAt = time.Now()
	s.nextUserID++
	s.users[stored.ID] = &stored

	return copyUser(&stored), nil
}

func (s *MemoryStorage) UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	if update.DisplayName != nil {
		user.DisplayName = *update.DisplayName
	}
	if update.University != nil {
		user.University = update.University
	}
	if update.Discipline != nil {
		user.Discipline = update.Discipline
	}
	if update.GraduationYear != nil {
		user.GraduationYear = update.GraduationYear
	}
	if update.Bio != nil {
		user.Bio = update.Bio
	}
	if update.IsAnonymous != nil {
		user.IsAnonymous = *update.IsAnonymous
	}
	if update.AvatarURL != nil {
		user.AvatarURL = update.AvatarURL
	}

	return copyUser(user), nil
}

// --- Resource operations ---

func (s *MemoryStorage) GetResources(ctx context.Context) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resource, 0, len(s.resource))
	for _, r := range s.resource {
		out = append(out, *r)
	}
	sortByID(out, func(r models.Resource) int64 { return r.ID })
	return out, nil
}

func (s *MemoryStorage) GetResourcesByDiscipline(ctx context.Context, discipline string) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resource, 0)
	for _, r := range s.resource {
		if strings.EqualFold(r.Discipline, discipline) {
			out = append(out, *r)
		}
	}
	sortByID(out, func(r models.Resource) int64 { return r.ID })
	return out, nil
}

func (s *MemoryStorage) GetResourcesBySkillLevel(ctx context.Context, skillLevel string) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resource, 0)
	for _, r := range s.resource {
		if strings.EqualFold(r.SkillLevel, skillLevel) {
			out = append(out, *r)
		}
	}
	sortByID(out, func(r models.Resource) int64 { return r.ID })
	return out, nil
}

func (s *MemoryStorage) GetResourceByID(ctx context.Context, id int64) (*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.resource[id]
	if !ok {
		return nil, nil
	}
	out := *r
	return &out, nil
}

func (s *MemoryStorage) CreateResource(ctx context.Context, resource *models.Resource) (*models.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createResourceLocked(resource), nil
}

func (s *MemoryStorage) createResourceLocked(resource *models.Resource) *models.Resource {
	stored := *resource
	stored.ID = s.nextResource
	stored.CreatedAt = time.Now()
	s.nextResource++
	s.resource[stored.ID] = &stored

	out := stored
	return &out
}

// --- Discussion bowl operations ---

func (s *MemoryStorage) GetDiscussionBowls(ctx context.Context) ([]models.DiscussionBowl, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DiscussionBowl, 0, len(s.bowls))
	for _, b := range s.bowls {
		out = append(out, *b)
	}
	sortByID(out, func(b models.DiscussionBowl) int64 { return b.ID })
	return out, nil
}

func (s *MemoryStorage) GetDiscussionBowlByID(ctx context.Context, id int64) (*models.DiscussionBowl, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bowls[id]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (s *MemoryStorage) CreateDiscussionBowl(ctx context.Context, bowl *models.DiscussionBowl) (*models.DiscussionBowl, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createBowlLocked(bowl), nil
}

func (s *MemoryStorage) createBowlLocked(bowl *models.DiscussionBowl) *models.DiscussionBowl {
	stored := *bowl
	stored.ID = s.nextBowlID
	stored.MemberCount = 0
	stored.PostCount = 0
	stored.CreatedAt = time.Now()
	s.nextBowlID++
	s.bowls[stored.ID] = &stored

	out := stored
	return &out
}

// --- Discussion topic operations ---

func (s *MemoryStorage) GetTopicsByBowlID(ctx context.Context, bowlID int64) ([]models.DiscussionTopic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DiscussionTopic, 0)
	for _, t := range s.topics {
		if t.BowlID == bowlID {
			out = append(out, *t)
		}
	}
	sortByID(out, func(t models.DiscussionTopic) int64 { return t.ID })
	return out, nil
}

func (s *MemoryStorage) CreateDiscussionTopic(ctx context.Context, topic *models.DiscussionTopic) (*models.DiscussionTopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *topic
	stored.ID = s.nextTopicID
	stored.ReplyCount = 0
	stored.CreatedAt = time.Now()
	s.nextTopicID++
	s.topics[stored.ID] = &stored

	// Counter update happens under the same lock as the insert, so
	// concurrent topic creation on one bowl cannot lose updates.
	if bowl, ok := s.bowls[stored.BowlID]; ok {
		bowl.PostCount++
	}

	out := stored
	return &out, nil
}

// --- Job listing operations ---

func (s *MemoryStorage) GetJobListings(ctx context.Context) ([]models.JobListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.JobListing, 0)
	for _, j := range s.jobs {
		if j.IsActive {
			out = append(out, *j)
		}
	}
	sortByID(out, func(j models.JobListing) int64 { return j.ID })
	return out, nil
}

func (s *MemoryStorage) GetJobListingsByDiscipline(ctx context.Context, discipline string) ([]models.JobListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.JobListing, 0)
	for _, j := range s.jobs {
		if j.IsActive && strings.EqualFold(j.Discipline, discipline) {
			out = append(out, *j)
		}
	}
	sortByID(out, func(j models.JobListing) int64 { return j.ID })
	return out, nil
}

func (s *MemoryStorage) GetJobListingByID(ctx context.Context, id int64) (*models.JobListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}
	out := *j
	return &out, nil
}

func (s *MemoryStorage) CreateJobListing(ctx context.Context, job *models.JobListing) (*models.JobListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createJobLocked(job), nil
}

func (s *MemoryStorage) createJobLocked(job *models.JobListing) *models.JobListing {
	stored := *job
	stored.ID = s.nextJobID
	stored.CreatedAt = time.Now()
	s.nextJobID++
	s.jobs[stored.ID] = &stored

	out := stored
	return &out
}

// --- Mentor operations ---

func (s *MemoryStorage) GetMentors(ctx context.Context) ([]models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Mentor, 0, len(s.mentors))
	for _, m := range s.mentors {
		out = append(out, copyMentor(m))
	}
	sortByID(out, func(m models.Mentor) int64 { return m.ID })
	return out, nil
}

func (s *MemoryStorage) GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mentors[id]
	if !ok {
		return nil, nil
	}
	out := copyMentor(m)
	return &out, nil
}

func (s *MemoryStorage) GetMentorsByExpertise(ctx context.Context, expertise string) ([]models.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(expertise)
	out := make([]models.Mentor, 0)
	for _, m := range s.mentors {
		for _, tag := range m.Expertise {
			if strings.Contains(strings.ToLower(tag), needle) {
				out = append(out, copyMentor(m))
				break
			}
		}
	}
	sortByID(out, func(m models.Mentor) int64 { return m.ID })
	return out, nil
}

func (s *MemoryStorage) CreateMentor(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := copyMentor(mentor)
	stored.ID = s.nextMentorID
	s.nextMentorID++
	s.mentors[stored.ID] = &stored

	out := copyMentor(&stored)
	return &out, nil
}

// --- Message operations ---

func (s *MemoryStorage) GetMessagesBetweenUsers(ctx context.Context, userID1, userID2 int64) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if (m.SenderID == userID1 && m.ReceiverID == userID2) ||
			(m.SenderID == userID2 && m.ReceiverID == userID1) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStorage) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *message
	stored.ID = s.nextMessageID
	stored.IsRead = false
	stored.CreatedAt = time.Now()
	s.nextMessageID++
	s.messages[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (s *MemoryStorage) MarkMessageAsRead(ctx context.Context, id int64) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return nil, nil
	}
	m.IsRead = true

	out := *m
	return &out, nil
}

// --- helpers ---

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	out := *u
	return &out
}

func copyMentor(m *models.Mentor) models.Mentor {
	out := *m
	out.Expertise = append([]string(nil), m.Expertise...)
	out.User = nil
	return out
}

// sortByID keeps list responses in stable insertion order; map
// iteration alone is randomized.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool {
		return id(items[i]) < id(items[j])
	})
}
