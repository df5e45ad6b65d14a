package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sandeshm27/postline/internal/models"
	"github.com/sandeshm27/postline/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostLogRepoWithMock(t *testing.T) (PostLogRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostLogRepository(db), mock, db
}

func TestPostLogCreate_OutsideTx(t *testing.T) {
	repo, mock, db := newPostLogRepoWithMock(t)
	defer db.Close()

	ip := "203.0.113.7"
	mock.ExpectQuery(`(?s)INSERT INTO post_logs \(id, post_id, account_id, request_ip\)\s+VALUES \(\$1, \$2, \$3, \$4\)\s+RETURNING id`).
		WithArgs(sqlmock.AnyArg(), "p-1", nil, ip).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("l-1"))

	id, err := repo.Create(context.Background(), nil, &models.PostLog{PostID: "p-1", RequestIP: &ip})
	require.NoError(t, err)
	assert.Equal(t, "l-1", id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilter_AppliesAllBounds(t *testing.T) {
	repo, mock, db := newPostLogRepoWithMock(t)
	defer db.Close()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	q := `(?s)FROM post_logs pl\s+JOIN posts p ON p\.id = pl\.post_id\s+WHERE p\.content_id = \$1\s+AND p\.account_id::text = \$2\s+AND pl\.created_at BETWEEN \$3 AND \$4.*ORDER BY pl\.created_at, pl\.id`

	acc := "a-1"
	rows := sqlmock.NewRows([]string{"id", "post_id", "account_id", "request_ip", "created_at"}).
		AddRow("l-1", "p-1", acc, "203.0.113.7", from.Add(24*time.Hour)).
		AddRow("l-2", "p-1", acc, nil, from.Add(48*time.Hour))
	mock.ExpectQuery(q).
		WithArgs("c-1", "a-1", from, to, "m-1").
		WillReturnRows(rows)

	logs, err := repo.Filter(context.Background(), &transfer.PostHistoryFilter{
		ContentID: "c-1",
		MediaID:   "m-1",
		From:      from,
		To:        to,
		AccountID: "a-1",
	})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "l-1", logs[0].ID)
	assert.Equal(t, "l-2", logs[1].ID)
	assert.Nil(t, logs[1].RequestIP)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilter_NoMatches(t *testing.T) {
	repo, mock, db := newPostLogRepoWithMock(t)
	defer db.Close()

	from := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM post_logs pl`).
		WithArgs("c-1", "a-1", from, to, "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "account_id", "request_ip", "created_at"}))

	logs, err := repo.Filter(context.Background(), &transfer.PostHistoryFilter{
		ContentID: "c-1",
		From:      from,
		To:        to,
		AccountID: "a-1",
	})
	require.NoError(t, err)
	assert.Empty(t, logs, "inverted range yields no rows")
}
