package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// DB wraps a *sql.DB with the dialect specific pieces the repositories
// need: a squirrel statement builder with the right placeholder format and
// an error classifier for the driver's error type.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	now                func() time.Time
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether a failed operation could succeed on retry.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique-key collision.
	IsUniqueViolation(err error) bool
}

// NewConnectDB opens a connection to the database described by cfg.DSN.
//
// The driver is chosen by the DSN scheme:
//   - postgres:// and postgresql:// use pgx;
//   - sqlite:// and file: use go-sqlite3.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: unknown scheme", ErrUnsupportedDSN)
	}
}

func newDB(conn *sql.DB, dialect migrations.Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	placeholder := sq.PlaceholderFormat(sq.Question)
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
