package reporter

import (
	"errors"
	"fmt"
	"os"
)

// ErrIO is returned when a result cannot be persisted.
var ErrIO = errors.New("failed to write benchmark log")

// Append adds line and a trailing newline to the file at path, creating it if needed.
// Existing content is never modified.
func Append(line, path string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrIO, closeErr)
		}
	}()

	// One write per line so concurrent appenders cannot split it.
	if _, err := f.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}
