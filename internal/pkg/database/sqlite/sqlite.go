// Package sqlite opens the embedded SQLite store shared by every repository.
package sqlite

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"
	_ "modernc.org/sqlite"

	"github.com/peeky-app/peeky-service/internal/pkg/database/sqlite/migrations"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

type Config struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration
}

// NewSQLite opens the database at cfg.Path with foreign keys enforced on every
// connection and applies the embedded migrations.
func NewSQLite(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.NotValidf("empty sqlite path")
	}

	db, err := sqlx.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, errors.Annotate(err, "open sqlite db")
	}

	maxOpen := cfg.MaxOpenConns
	if cfg.Path == ":memory:" {
		// every connection to :memory: is a separate database
		maxOpen = 1
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Annotate(err, "ping sqlite db")
	}
	if err := ApplyMigrations(ctx, db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, errors.Annotate(err, "run migrations")
	}
	return db, nil
}

func dsn(cfg *Config) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))
	if cfg.Path != ":memory:" {
		q.Add("_pragma", "journal_mode(WAL)")
		q.Add("_pragma", "synchronous(NORMAL)")
	}
	q.Set("_txlock", "immediate")
	return cfg.Path + "?" + q.Encode()
}

// ToMillis converts t to the UTC unix-millisecond form stored in timestamp columns.
func ToMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
