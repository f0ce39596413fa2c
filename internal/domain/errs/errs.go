package errs

import "errors"

var (
	ErrInvalidData = errors.New("invalid data")
	ErrDuplicate   = errors.New("duplicate resource")
	ErrNotFound    = errors.New("resource not found")
)

// Error carries a client-facing message and unwraps to one of the kinds above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func InvalidData(msg string) error { return &Error{Kind: ErrInvalidData, Msg: msg} }

func Duplicate(msg string) error { return &Error{Kind: ErrDuplicate, Msg: msg} }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }
