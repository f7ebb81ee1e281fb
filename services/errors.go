package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// The three error kinds every operation can surface. Callers match with
// errors.Is; the HTTP layer maps them to 404, 409 and 500.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrTransaction = errors.New("transaction failed")
)

// classify wraps storage-level failures as retryable transaction errors
// while letting the domain kinds pass through untouched.
func classify(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrTransaction, err)
}

func notFound(entity string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
