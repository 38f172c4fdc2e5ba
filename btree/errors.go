package btree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration, e.g. a degree
	// below 2.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrMissingArgument signals that a required argument (sequence, predicate,
	// comparison function) is nil.
	ErrMissingArgument = errors.New("btree: missing required argument")
	// ErrInvariant signals a violated structural tree invariant. It is reported
	// by Check only.
	ErrInvariant = errors.New("btree: invariant violated")
)

// ArgumentError reports an argument validation failure. Param names the
// offending parameter ("degree", "compare", "root", "sequence", "predicate"),
// Err is one of ErrInvalidConfig or ErrMissingArgument.
type ArgumentError struct {
	Param string
	Err   error
	Msg   string
}

func (e *ArgumentError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Param)
	}
	return fmt.Sprintf("%v: %s: %s", e.Err, e.Param, e.Msg)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func missing(param string) error {
	return &ArgumentError{Param: param, Err: ErrMissingArgument, Msg: "must not be nil"}
}

func invalid(param string, format string, args ...any) error {
	return &ArgumentError{Param: param, Err: ErrInvalidConfig, Msg: fmt.Sprintf(format, args...)}
}
