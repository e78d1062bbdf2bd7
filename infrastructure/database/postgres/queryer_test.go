package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Connection{DB: db}, mock
}

func TestConnection_Queryer(t *testing.T) {
	ctx := context.Background()
	conn, mock := newMockConnection(t)

	mock.ExpectPing()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE businesses SET has_completed_metrics = $1")).
		WithArgs(true).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM businesses")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b1").AddRow("b2"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM businesses WHERE id = $1")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Padaria"))

	require.NoError(t, conn.Ping(ctx))

	result, err := conn.Exec(ctx, "UPDATE businesses SET has_completed_metrics = $1", true)
	require.NoError(t, err)
	affected, err := result.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	rows, err := conn.Query(ctx, "SELECT id FROM businesses")
	require.NoError(t, err)
	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{"b1", "b2"}, ids)

	var name string
	require.NoError(t, conn.QueryRow(ctx, "SELECT name FROM businesses WHERE id = $1", "b1").Scan(&name))
	assert.Equal(t, "Padaria", name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_ContextoCancelado(t *testing.T) {
	conn, _ := newMockConnection(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conn.Exec(ctx, "DELETE FROM metrics")
	assert.ErrorIs(t, err, context.Canceled)
}
