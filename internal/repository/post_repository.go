package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sandeshm27/postline/internal/models"
)

type PostRepository interface {
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) (string, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status bool, failReason *string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) (string, error) {
	query := `
		INSERT INTO posts (id, content_id, channel_id, account_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	var id string
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, post.ID, post.ContentID, post.ChannelID, post.AccountID, post.Status).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, post.ID, post.ContentID, post.ChannelID, post.AccountID, post.Status).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT id, content_id, channel_id, account_id, status, fail_reason, created_at FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.Post
	err := row.Scan(&post.ID, &post.ContentID, &post.ChannelID, &post.AccountID, &post.Status, &post.FailReason, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id string, status bool, failReason *string) error {
	query := `
		UPDATE posts
		SET status = $1,
			fail_reason = $2
		WHERE id = $3
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, status, failReason, id)
	} else {
		_, err = r.db.ExecContext(ctx, query, status, failReason, id)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
