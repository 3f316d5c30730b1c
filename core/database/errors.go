package database

import (
	"database/sql"
	"fmt"

	"scheduler-api/core/errors"
	"scheduler-api/core/logger"

	"github.com/lib/pq"
)

// Classify maps driver errors onto the store sentinels in core/errors.
// Integrity (class 23) and data exception (class 22) failures are the
// caller's fault; everything else passes through untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", errors.ErrRecordNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23", "22":
			return fmt.Errorf("%w: %s (%s)", errors.ErrConstraintViolation, pqErr.Message, pqErr.Code)
		}
	}
	return err
}

// Wrap classifies err and prefixes it with op. Anything other than a missing
// row is logged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	err = Classify(err)
	if !errors.Is(err, errors.ErrRecordNotFound) {
		logger.Error(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
