package buf

import (
	"errors"
	"fmt"
)

var errInvalidRecord = errors.New("invalid record")

func errMissingField(field string) error {
	return fmt.Errorf("%w: missing %q", errInvalidRecord, field)
}

func errInvalidPosition(reason string) error {
	return fmt.Errorf("%w: %s", errInvalidRecord, reason)
}
