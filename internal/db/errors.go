package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/legday/pkg"
)

// StorageError is returned by the repos when the database call itself failed.
// Callers decide on retries; the repos never retry.
type StorageError struct {
	Op        string
	Err       error
	retryable bool
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Retryable() bool {
	return e.retryable
}

// WrapStorageErr wraps err into a *StorageError, nil stays nil.
func WrapStorageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &StorageError{
		Op:  op,
		Err: err,
		retryable: pkg.IsConnectionError(err) ||
			errors.Is(err, context.DeadlineExceeded),
	}
}

// IsRetryable reports whether err carries a retryable storage failure.
func IsRetryable(err error) bool {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Retryable()
	}
	return false
}
