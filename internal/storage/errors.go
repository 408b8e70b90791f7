package storage

import (
	"errors"
	"fmt"
)

// ErrStorage marks every failure surfaced by an adapter. Callers are not
// expected to tell connection, encoding and response errors apart.
var ErrStorage = errors.New("storage error")

// Wrap tags err with ErrStorage and the failing operation.
// It returns nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorage) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
