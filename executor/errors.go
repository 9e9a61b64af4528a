package executor

import "errors"

// Runtime failure kinds. Errors returned by the executor wrap exactly one of
// these; match them with errors.Is.
var (
	ErrUndefinedVariable     = errors.New("undefined variable")
	ErrUndefinedDistribution = errors.New("undefined distribution")
	ErrUnknownMethod         = errors.New("unknown method")
	ErrArity                 = errors.New("wrong number of arguments")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrUnimplemented         = errors.New("unimplemented feature")
	ErrResourceExhausted     = errors.New("resource exhausted")
	ErrInvalidDistribution   = errors.New("invalid distribution")
)
