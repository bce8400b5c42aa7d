package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "wrapped serialization failure", err: fmt.Errorf("tx: %w", pgError(pgerrcode.SerializationFailure)), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_IsUniqueViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("x")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	primaryKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	foreignKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(primaryKey))
	assert.False(t, c.IsUniqueViolation(foreignKey))
	assert.False(t, c.IsUniqueViolation(errors.New("x")))

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}
