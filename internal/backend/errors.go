package backend

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated covers 401 and 403 answers. Callers treat it as "no
// session", not as a failure.
var ErrUnauthenticated = errors.New("backend rejected the credentials")

// StatusError reports any other non-2xx backend answer.
type StatusError struct {
	Operation string
	Code      int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned status %d", e.Operation, e.Code)
}

// HasStatus reports whether err is a StatusError with the given code.
func HasStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == code
}
