package models

import "time"

// DiscussionBowl defines a discussion forum based on the
// 'discussion_bowls' table. MemberCount is reserved for a future
// join-bowl operation; nothing increments it yet.
type DiscussionBowl struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Discipline  string    `json:"discipline" db:"discipline"`
	MemberCount int       `json:"memberCount" db:"member_count"`
	PostCount   int       `json:"postCount" db:"post_count"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// DiscussionTopic defines a thread within a bowl based on the
// 'discussion_topics' table
type DiscussionTopic struct {
	ID         int64     `json:"id" db:"id"`
	BowlID     int64     `json:"bowlId" db:"bowl_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	ReplyCount int       `json:"replyCount" db:"reply_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
