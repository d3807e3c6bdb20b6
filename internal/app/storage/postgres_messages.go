package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/engbowl/engbowl/internal/app/models"
)

const messageColumns = `id, sender_id, receiver_id, content, is_read, created_at`

func scanMessage(row pgx.Row, msg *models.Message) error {
	return row.Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Content, &msg.IsRead, &msg.CreatedAt)
}

// GetMessagesBetweenUsers returns the conversation between two users
// in either direction, oldest first.
func (s *PostgresStorage) GetMessagesBetweenUsers(ctx context.Context, userID1, userID2 int64) ([]models.Message, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC`, userID1, userID2)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		if err := scanMessage(rows, &msg); err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}

// CreateMessage inserts a new direct message, unread by default
func (s *PostgresStorage) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	stored := *message
	err := s.db.QueryRow(ctx, `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, is_read, created_at`,
		message.SenderID, message.ReceiverID, message.Content).
		Scan(&stored.ID, &stored.IsRead, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating message: %w", err)
	}
	return &stored, nil
}

// MarkMessageAsRead flags a message as read and returns the updated
// row, (nil, nil) when the id is unknown.
func (s *PostgresStorage) MarkMessageAsRead(ctx context.Context, id int64) (*models.Message, error) {
	var msg models.Message
	err := scanMessage(s.db.QueryRow(ctx, `
		UPDATE messages
		SET is_read = true
		WHERE id = $1
		RETURNING `+messageColumns, id), &msg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error marking message as read: %w", err)
	}
	return &msg, nil
}
