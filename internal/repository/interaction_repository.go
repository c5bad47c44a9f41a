package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"elimuhub-agent/internal/models"
)

// InteractionRepository logs chat turns and user feedback. Logging is
// best-effort support tooling, so callers treat failures as warnings.
type InteractionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewInteractionRepository(db *sql.DB, logger *zap.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:     db,
		logger: logger,
	}
}

// InitSchema creates the interaction and feedback tables.
func (r *InteractionRepository) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		conversation_id TEXT,
		user_message TEXT,
		response TEXT,
		intent TEXT,
		confidence REAL,
		escalated INTEGER,
		created_at TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		conversation_id TEXT,
		rating INTEGER,
		comments TEXT,
		created_at TIMESTAMP
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize interaction schema: %w", err)
	}
	return nil
}

// LogInteraction records one chat turn.
func (r *InteractionRepository) LogInteraction(ctx context.Context, in *models.Interaction) error {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	escalated := 0
	if in.Escalated {
		escalated = 1
	}
	query := squirrel.Insert("interactions").
		Columns("id", "conversation_id", "user_message", "response", "intent", "confidence", "escalated", "created_at").
		Values(in.ID.String(), in.ConversationID, in.UserMessage, in.Response, string(in.Intent), in.Confidence, escalated, in.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}
	return nil
}

// SaveFeedback records a user rating for a conversation.
func (r *InteractionRepository) SaveFeedback(ctx context.Context, fb *models.Feedback) error {
	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}
	query := squirrel.Insert("feedback").
		Columns("id", "conversation_id", "rating", "comments", "created_at").
		Values(fb.ID.String(), fb.ConversationID, fb.Rating, fb.Comments, fb.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}
