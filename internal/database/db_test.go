package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traitel/calmnight/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "creates connection with valid config",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "calmnight",
				Username: "calm",
				Password: "night",
			},
		},
		{
			name: "creates connection with pool settings and params",
			cfg: config.DatabaseConfig{
				Host:            "db.example.com",
				Port:            3307,
				Database:        "calmnight",
				Username:        "admin",
				Password:        "secret",
				TLS:             true,
				Params:          map[string]string{"charset": "utf8mb4"},
				MaxOpenConns:    10,
				MaxIdleConns:    2,
				ConnMaxLifetime: 300,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "mysql", got.DriverName())
		})
	}
}

func TestMySQLConfig(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.example.com",
		Port:     3307,
		Database: "calmnight",
		Username: "calm",
		Password: "night",
		TLS:      true,
		Params:   map[string]string{"charset": "utf8mb4"},
	}

	got := mysqlConfig(cfg)
	assert.Equal(t, "db.example.com:3307", got.Addr)
	assert.Equal(t, time.UTC, got.Loc)
	assert.True(t, got.ParseTime)
	assert.True(t, got.MultiStatements)

	dsn := got.FormatDSN()
	assert.True(t, strings.HasPrefix(dsn, "calm:night@tcp(db.example.com:3307)/calmnight?"), dsn)
	for _, want := range []string{"parseTime=true", "multiStatements=true", "tls=true", "charset=utf8mb4"} {
		assert.Contains(t, dsn, want)
	}
}

func TestBuildMultiRowInsert(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		rowCount int
		want     string
	}{
		{
			name:     "single row",
			columns:  []string{"emotion", "intensity"},
			rowCount: 1,
			want:     "INSERT INTO check_ins (emotion, intensity) VALUES (?, ?)",
		},
		{
			name:     "three rows",
			columns:  []string{"entry"},
			rowCount: 3,
			want:     "INSERT INTO check_ins (entry) VALUES (?), (?), (?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMultiRowInsert("check_ins", tt.columns, tt.rowCount))
		})
	}
}

func TestRunInTx(t *testing.T) {
	tests := []struct {
		name      string
		fnErr     error
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "commits on success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name:  "rolls back on error",
			fnErr: errors.New("insert failed"),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "begin error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			err = RunInTx(context.Background(), sqlx.NewDb(db, "mysql"), func(ctx context.Context, tx *sqlx.Tx) error {
				return tt.fnErr
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTx_panicRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "bad row", func() {
		_ = RunInTx(context.Background(), sqlx.NewDb(db, "mysql"), func(ctx context.Context, tx *sqlx.Tx) error {
			panic("bad row")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTx_rollbackErrorKeepsCause(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

	cause := errors.New("duplicate entry")
	err = RunInTx(context.Background(), sqlx.NewDb(db, "mysql"), func(ctx context.Context, tx *sqlx.Tx) error {
		return cause
	})
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection lost")
}
