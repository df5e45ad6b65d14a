package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sandeshm27/postline/internal/models"
	"github.com/sandeshm27/postline/internal/transfer"
)

type PostLogRepository interface {
	Create(ctx context.Context, tx *sql.Tx, pl *models.PostLog) (string, error)
	Filter(ctx context.Context, f *transfer.PostHistoryFilter) ([]*models.PostLog, error)
}

type postLogRepository struct {
	db *sql.DB
}

func NewPostLogRepository(db *sql.DB) PostLogRepository {
	return &postLogRepository{db: db}
}

func (r *postLogRepository) Create(ctx context.Context, tx *sql.Tx, pl *models.PostLog) (string, error) {
	query := `
		INSERT INTO post_logs (id, post_id, account_id, request_ip)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if pl.ID == "" {
		pl.ID = uuid.NewString()
	}

	var id string
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, pl.ID, pl.PostID, pl.AccountID, pl.RequestIP).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, pl.ID, pl.PostID, pl.AccountID, pl.RequestIP).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return id, nil
}

// Filter returns the log rows matching the history filter, oldest first. The
// date bounds apply to the log row itself, so every status transition inside
// the range shows up even when the post predates it. An empty MediaID skips
// the media constraint.
func (r *postLogRepository) Filter(ctx context.Context, f *transfer.PostHistoryFilter) ([]*models.PostLog, error) {
	query := `
		SELECT pl.id, pl.post_id, pl.account_id, pl.request_ip, pl.created_at
		FROM post_logs pl
		JOIN posts p ON p.id = pl.post_id
		WHERE p.content_id = $1
			AND p.account_id::text = $2
			AND pl.created_at BETWEEN $3 AND $4
			AND ($5 = '' OR EXISTS (
				SELECT 1 FROM media m
				WHERE m.content_id = p.content_id AND m.id::text = $5
			))
		ORDER BY pl.created_at, pl.id
	`

	rows, err := r.db.QueryContext(ctx, query, f.ContentID, f.AccountID, f.From, f.To, f.MediaID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var logs []*models.PostLog
	for rows.Next() {
		var pl models.PostLog
		if err := rows.Scan(&pl.ID, &pl.PostID, &pl.AccountID, &pl.RequestIP, &pl.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		logs = append(logs, &pl)
	}

	if err = rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return logs, nil
}
