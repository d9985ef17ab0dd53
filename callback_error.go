package ryu

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CallbackError is the failure payload a source carries after an item callback
// panics mid-Emit (spec §7(a): "callback exception"). It
// correlates the failure with the chain position it occurred at (via Describe)
// and a per-failure correlation ID, so multiple log lines about the same
// transition can be joined without re-parsing the error string.
type CallbackError interface {
	error
	Unwrap() error
	Site() string
	Describe() string
	CorrelationID() uuid.UUID
}

type callbackError struct {
	err      error
	site     string // the literal tag, "exception in on_item callback"
	describe string // source.Describe() at the moment of failure
	id       uuid.UUID
}

func newCallbackError(err error, site, describe string) error {
	if err == nil {
		return nil
	}
	return &callbackError{err: err, site: site, describe: describe, id: uuid.New()}
}

func (e *callbackError) Error() string { return fmt.Sprintf("%s: %s: %s", e.describe, e.site, e.err) }
func (e *callbackError) Unwrap() error { return e.err }
func (e *callbackError) Site() string  { return e.site }

func (e *callbackError) Describe() string      { return e.describe }
func (e *callbackError) CorrelationID() uuid.UUID { return e.id }

func (e *callbackError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "%s (correlation=%s): %+v", e.Error(), e.id, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractCallbackError returns the CallbackError wrapping err, if any.
func ExtractCallbackError(err error) (CallbackError, bool) {
	var ce CallbackError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
