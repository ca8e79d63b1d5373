package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// ConversationRepository implements secondary.ConversationRepository with
// SQLite.
type ConversationRepository struct {
	db *sql.DB
}

// NewConversationRepository creates a new SQLite conversation repository.
func NewConversationRepository(db *sql.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

const conversationColumns = "id, project_id, title, message_count, token_count, created_at, updated_at"

// Create persists a new conversation.
func (r *ConversationRepository) Create(ctx context.Context, conversation *secondary.ConversationRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO conversations (id, project_id, title) VALUES (?, ?, ?)",
		conversation.ID, conversation.ProjectID, conversation.Title,
	)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// GetByID retrieves a conversation by its ID.
func (r *ConversationRepository) GetByID(ctx context.Context, id string) (*secondary.ConversationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+conversationColumns+" FROM conversations WHERE id = ?", id,
	)

	record, err := scanConversation(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("conversation %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return record, nil
}

// ListByProject retrieves a project's conversations, most recently updated
// first.
func (r *ConversationRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.ConversationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+conversationColumns+" FROM conversations WHERE project_id = ? ORDER BY updated_at DESC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*secondary.ConversationRecord
	for rows.Next() {
		record, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, record)
	}
	return conversations, rows.Err()
}

// UpdateStats updates the denormalized message and token counters.
func (r *ConversationRepository) UpdateStats(ctx context.Context, id string, messageCount, tokenCount int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE conversations SET message_count = ?, token_count = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		messageCount, tokenCount, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update conversation stats: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("conversation %s not found", id)
	}
	return nil
}

// Delete removes a conversation; its messages cascade.
func (r *ConversationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM conversations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("conversation %s not found", id)
	}
	return nil
}

func scanConversation(row rowScanner) (*secondary.ConversationRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.ConversationRecord{}
	err := row.Scan(&record.ID, &record.ProjectID, &record.Title,
		&record.MessageCount, &record.TokenCount, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure ConversationRepository implements the interface.
var _ secondary.ConversationRepository = (*ConversationRepository)(nil)

// MessageRepository implements secondary.MessageRepository with SQLite.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new SQLite message repository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append persists a new message.
func (r *MessageRepository) Append(ctx context.Context, message *secondary.MessageRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (id, conversation_id, role, content) VALUES (?, ?, ?, ?)",
		message.ID, message.ConversationID, message.Role, message.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListByConversation retrieves a conversation's messages in insertion order.
// created_at alone is second-granular, so rowid breaks ties.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]*secondary.MessageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, conversation_id, role, content, created_at FROM messages WHERE conversation_id = ? ORDER BY created_at ASC, rowid ASC",
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*secondary.MessageRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.MessageRecord{}
		err := rows.Scan(&record.ID, &record.ConversationID, &record.Role,
			&record.Content, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		record.CreatedAt = fmtTime(createdAt)
		messages = append(messages, record)
	}
	return messages, rows.Err()
}

// Ensure MessageRepository implements the interface.
var _ secondary.MessageRepository = (*MessageRepository)(nil)

// TokenUsageRepository implements secondary.TokenUsageRepository with SQLite.
type TokenUsageRepository struct {
	db *sql.DB
}

// NewTokenUsageRepository creates a new SQLite token usage repository.
func NewTokenUsageRepository(db *sql.DB) *TokenUsageRepository {
	return &TokenUsageRepository{db: db}
}

const tokenUsageColumns = "id, project_id, conversation_id, model, input_tokens, output_tokens, cost, created_at"

// Record persists a usage entry.
func (r *TokenUsageRepository) Record(ctx context.Context, usage *secondary.TokenUsageRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO token_usage (id, project_id, conversation_id, model, input_tokens, output_tokens, cost)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		usage.ID, nullStr(usage.ProjectID), nullStr(usage.ConversationID),
		usage.Model, usage.InputTokens, usage.OutputTokens, usage.Cost,
	)
	if err != nil {
		return fmt.Errorf("failed to record token usage: %w", err)
	}
	return nil
}

// List retrieves all usage entries, newest first.
func (r *TokenUsageRepository) List(ctx context.Context) ([]*secondary.TokenUsageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+tokenUsageColumns+" FROM token_usage ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list token usage: %w", err)
	}
	defer rows.Close()

	return scanTokenUsageRows(rows)
}

// ListByDateRange retrieves usage entries between two timestamps
// (inclusive), newest first. datetime() normalizes RFC3339 and SQLite
// datetime text to the stored column format before comparing.
func (r *TokenUsageRepository) ListByDateRange(ctx context.Context, from, to string) ([]*secondary.TokenUsageRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+tokenUsageColumns+" FROM token_usage WHERE created_at >= datetime(?) AND created_at <= datetime(?) ORDER BY created_at DESC",
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list token usage by range: %w", err)
	}
	defer rows.Close()

	return scanTokenUsageRows(rows)
}

func scanTokenUsageRows(rows *sql.Rows) ([]*secondary.TokenUsageRecord, error) {
	var entries []*secondary.TokenUsageRecord
	for rows.Next() {
		var (
			projectID, conversationID sql.NullString
			createdAt                 time.Time
		)
		record := &secondary.TokenUsageRecord{}
		err := rows.Scan(&record.ID, &projectID, &conversationID, &record.Model,
			&record.InputTokens, &record.OutputTokens, &record.Cost, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan token usage: %w", err)
		}
		record.ProjectID = projectID.String
		record.ConversationID = conversationID.String
		record.CreatedAt = fmtTime(createdAt)
		entries = append(entries, record)
	}
	return entries, rows.Err()
}

// Ensure TokenUsageRepository implements the interface.
var _ secondary.TokenUsageRepository = (*TokenUsageRepository)(nil)
