package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kidiezyllex/real-estate-BE/internal/domain"
	"github.com/lib/pq"
)

// translateError maps driver errors onto the domain error taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pqErr.Message)
		case "unique_violation":
			return fmt.Errorf("%w: %s", domain.ErrConflict, pqErr.Message)
		case "check_violation", "not_null_violation", "invalid_text_representation":
			return fmt.Errorf("%w: %s", domain.ErrBadRequest, pqErr.Message)
		}
	}
	return err
}
