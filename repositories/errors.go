package repositories

import "errors"

// Storage-level errors returned (wrapped) by repository implementations.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("record already exists")
	ErrForeignKey   = errors.New("referenced record does not exist")
	ErrInvalidValue = errors.New("value rejected by the database")
	// ErrQueryCanceled means the server aborted the statement, usually
	// because the request context was canceled or its deadline passed.
	ErrQueryCanceled = errors.New("query canceled")
)
