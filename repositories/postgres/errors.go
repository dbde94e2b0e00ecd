package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/upb/biztime/repositories"
)

// classify maps driver errors onto the repositories sentinels.
// It returns nil for errors that have no storage meaning.
func classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repositories.ErrNotFound
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code.Name() {
	case "unique_violation":
		return repositories.ErrDuplicate
	case "foreign_key_violation":
		return repositories.ErrForeignKey
	case "query_canceled":
		return repositories.ErrQueryCanceled
	case "check_violation", "not_null_violation", "invalid_text_representation", "numeric_value_out_of_range":
		return repositories.ErrInvalidValue
	}
	return nil
}

// wrapError annotates err with the failed operation, keeping both the
// matching sentinel (if any) and the driver error reachable via errors.Is/As.
func wrapError(op string, err error) error {
	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("failed to %s: %w: %w", op, sentinel, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
