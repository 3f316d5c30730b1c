package database

import (
	"database/sql"
	stderrors "errors"
	"testing"

	"scheduler-api/core/errors"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: sql.ErrNoRows, want: errors.ErrRecordNotFound},
		{name: "unique violation", err: &pq.Error{Code: "23505", Message: "duplicate key"}, want: errors.ErrConstraintViolation},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: errors.ErrConstraintViolation},
		{name: "check violation", err: &pq.Error{Code: "23514"}, want: errors.ErrConstraintViolation},
		{name: "invalid text representation", err: &pq.Error{Code: "22P02"}, want: errors.ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Classify(tt.err), tt.want)
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	connErr := &pq.Error{Code: "08006"}
	got := Classify(connErr)
	assert.Same(t, connErr, got)

	plain := stderrors.New("dial tcp: connection refused")
	assert.Equal(t, plain, Classify(plain))
	assert.NoError(t, Classify(nil))
}

func TestWrap(t *testing.T) {
	err := Wrap("UserRepository:GetByID", sql.ErrNoRows)
	assert.ErrorIs(t, err, errors.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "UserRepository:GetByID")
	assert.NoError(t, Wrap("x", nil))
}
