package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRepoWithMock(t *testing.T) (ContentRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewContentRepository(db), mock, db
}

func TestContentCreate_GeneratesID(t *testing.T) {
	repo, mock, db := newContentRepoWithMock(t)
	defer db.Close()

	q := `(?s)INSERT INTO contents \(id, content_name\)\s+VALUES \(\$1, \$2\)\s+RETURNING created_at`

	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "Launch teaser").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	content, err := repo.Create(context.Background(), "Launch teaser")
	require.NoError(t, err)

	_, err = uuid.Parse(content.ID)
	require.NoError(t, err, "expected UUID id, got %q", content.ID)
	assert.Equal(t, "Launch teaser", content.ContentName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFirstByChannelID_DeterministicOrder(t *testing.T) {
	repo, mock, db := newContentRepoWithMock(t)
	defer db.Close()

	// Oldest content wins, ties broken by id, so repeated generations for the
	// same channel resolve to the same content.
	q := `(?s)FROM content_channels cc\s+JOIN contents c ON c\.id = cc\.content_id\s+WHERE cc\.channel_id = \$1\s+ORDER BY c\.created_at, c\.id\s+LIMIT 1`

	rows := sqlmock.NewRows([]string{"id", "content_name", "created_at"}).
		AddRow("c-1", "Launch teaser", time.Now())
	mock.ExpectQuery(q).WithArgs("ch-9").WillReturnRows(rows)

	content, err := repo.GetFirstByChannelID(context.Background(), "ch-9")
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "c-1", content.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFirstByChannelID_NoAssignment(t *testing.T) {
	repo, mock, db := newContentRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM content_channels`).
		WithArgs("ch-empty").
		WillReturnError(sql.ErrNoRows)

	content, err := repo.GetFirstByChannelID(context.Background(), "ch-empty")
	require.NoError(t, err)
	assert.Nil(t, content)
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock, db := newContentRepoWithMock(t)
	defer db.Close()

	dbErr := errors.New("db down")
	mock.ExpectQuery(`SELECT id, content_name, created_at FROM contents`).
		WithArgs("c-1").
		WillReturnError(dbErr)

	_, err := repo.GetByID(context.Background(), "c-1")
	require.ErrorIs(t, err, dbErr)
}
