package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sandeshm27/postline/internal/models"
)

type ContentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Content, error)
	GetFirstByChannelID(ctx context.Context, channelID string) (*models.Content, error)
	Create(ctx context.Context, name string) (*models.Content, error)
	UpdateName(ctx context.Context, id, name string) error
	Remove(ctx context.Context, id string) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, name string) (*models.Content, error) {
	query := `
		INSERT INTO contents (id, content_name)
		VALUES ($1, $2)
		RETURNING created_at
	`

	content := models.Content{
		ID:          uuid.NewString(),
		ContentName: name,
	}
	err := r.db.QueryRowContext(ctx, query, content.ID, content.ContentName).Scan(&content.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &content, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*models.Content, error) {
	query := `SELECT id, content_name, created_at FROM contents WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var content models.Content
	err := row.Scan(&content.ID, &content.ContentName, &content.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &content, nil
}

// GetFirstByChannelID returns the content assigned to the channel with the
// lowest created_at, ties broken by id, so repeated generations for the same
// channel pick the same content.
func (r *contentRepository) GetFirstByChannelID(ctx context.Context, channelID string) (*models.Content, error) {
	query := `
		SELECT c.id, c.content_name, c.created_at
		FROM content_channels cc
		JOIN contents c ON c.id = cc.content_id
		WHERE cc.channel_id = $1
		ORDER BY c.created_at, c.id
		LIMIT 1
	`

	var content models.Content
	err := r.db.QueryRowContext(ctx, query, channelID).Scan(&content.ID, &content.ContentName, &content.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &content, nil
}

func (r *contentRepository) UpdateName(ctx context.Context, id, name string) error {
	query := `UPDATE contents SET content_name = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM contents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
