package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sandeshm27/postline/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentServiceWithMock(t *testing.T) (ContentService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	s := NewContentService(
		repository.NewContentRepository(db),
		repository.NewMediaRepository(db),
	)
	return s, mock, db
}

func TestContentGet_IncludesMedia(t *testing.T) {
	s, mock, db := newContentServiceWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, content_name, created_at FROM contents`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content_name", "created_at"}).
			AddRow("c-1", "Launch teaser", time.Now()))
	mock.ExpectQuery(`FROM media`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content_id", "media_type", "media_url", "created_at"}).
			AddRow("m-1", "c-1", "image", "https://cdn.example.com/teaser.png", time.Now()).
			AddRow("m-2", "c-1", "video", "https://cdn.example.com/teaser.mp4", time.Now()))

	detail, err := s.Get(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, "c-1", detail.ID)
	assert.Equal(t, "Launch teaser", detail.ContentName)
	require.Len(t, detail.Media, 2)
	assert.Equal(t, "m-1", detail.Media[0].ID)
	assert.Equal(t, "video", detail.Media[1].MediaType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentGet_NoMedia(t *testing.T) {
	s, mock, db := newContentServiceWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, content_name, created_at FROM contents`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content_name", "created_at"}).
			AddRow("c-1", "Launch teaser", time.Now()))
	mock.ExpectQuery(`FROM media`).
		WithArgs("c-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "content_id", "media_type", "media_url", "created_at"}))

	detail, err := s.Get(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Empty(t, detail.Media)
}

func TestContentGet_Unknown(t *testing.T) {
	s, mock, db := newContentServiceWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, content_name, created_at FROM contents`).
		WithArgs("c-missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "c-missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestContentGet_MissingID(t *testing.T) {
	s, _, db := newContentServiceWithMock(t)
	defer db.Close()

	_, err := s.Get(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)
}
