package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidUUID is returned when a path or payload identifier is not a
// well-formed UUID.
var ErrInvalidUUID = fmt.Errorf("invalid UUID format")

// ValidateUUID reports whether id parses as a UUID. Herd and price IDs are
// UUID strings throughout, so route parameters are checked with this
// before any repository lookup.
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}
