package scanner

import (
	"strings"
)

type traceErr struct {
	trace []string
	err   error
}

func (e *traceErr) Error() string {
	prefix := strings.Join(e.trace, " > ")

	return "[" + prefix + "]: " + e.err.Error()
}

func (e *traceErr) Is(target error) bool {
	_, ok := target.(*traceErr)
	return ok
}

func (e *traceErr) Unwrap() error {
	return e.err
}

// Cause lets github.com/pkg/errors walk through the trace.
func (e *traceErr) Cause() error {
	return e.err
}

// Wrap prefixes the trace of err with name, creating the trace if needed.
func Wrap(name string, err error) error {
	if we, ok := err.(*traceErr); ok {
		we.trace = append([]string{name}, we.trace...)
		return we
	}

	return &traceErr{
		trace: []string{name},
		err:   err,
	}
}
