package mysql

import (
	"context"
	"errors"
	"moviecatalog/pkg/kvstore"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db, "", zap.NewNop()), mock
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		want    []byte
		wantErr error
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT v FROM kv WHERE k = ?")).
					WithArgs("movie:1").
					WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow([]byte(`{"id":1}`)))
			},
			want: []byte(`{"id":1}`),
		},
		{
			name: "not found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT v FROM kv WHERE k = ?")).
					WithArgs("movie:1").
					WillReturnRows(sqlmock.NewRows([]string{"v"}))
			},
			wantErr: kvstore.ErrNotFound,
		},
		{
			name: "driver error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT v FROM kv WHERE k = ?")).
					WithArgs("movie:1").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMock(t)
			tt.setup(mock)
			got, err := s.Get(context.Background(), "movie:1")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetUpserts(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)")).
		WithArgs("rating:7:anon_123", []byte(`{"rating":2}`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	require.NoError(t, s.Set(context.Background(), "rating:7:anon_123", []byte(`{"rating":2}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPrefixEscapesWildcards(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT v FROM kv WHERE k LIKE ?")).
		WithArgs(`rating:7:anon\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow([]byte("a")).AddRow([]byte("b")))
	values, err := s.GetByPrefix(context.Background(), "rating:7:anon_")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDel(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv WHERE k = ?")).
		WithArgs("movie:1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Del(context.Background(), "movie:1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScan(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT k, v FROM kv WHERE k LIKE ?")).
		WithArgs(`movie:%`).
		WillReturnRows(sqlmock.NewRows([]string{"k", "v"}).AddRow("movie:1", []byte("a")).AddRow("movie:2", []byte("b")))
	pairs, err := s.Scan(context.Background(), "movie:")
	require.NoError(t, err)
	assert.Equal(t, []kvstore.Pair{{Key: "movie:1", Value: []byte("a")}, {Key: "movie:2", Value: []byte("b")}}, pairs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	s, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS kv (k VARCHAR(255) NOT NULL PRIMARY KEY, v LONGBLOB NOT NULL)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
