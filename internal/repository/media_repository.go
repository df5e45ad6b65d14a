package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/sandeshm27/postline/internal/models"
)

// Media rows are reference data for post generation and history responses;
// nothing in this service writes them.
type MediaRepository interface {
	ListByContentID(ctx context.Context, contentID string) ([]*models.Media, error)
}

type mediaRepository struct {
	db *sql.DB
}

func NewMediaRepository(db *sql.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) ListByContentID(ctx context.Context, contentID string) ([]*models.Media, error) {
	query := `
		SELECT id, content_id, media_type, media_url, created_at
		FROM media
		WHERE content_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, contentID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var medias []*models.Media
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.ContentID, &m.MediaType, &m.MediaURL, &m.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		medias = append(medias, &m)
	}

	if err = rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return medias, nil
}
