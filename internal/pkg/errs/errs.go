package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is also recognizes references attached with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders the verbose form of err, stack included, as lines.
// Categorized wrappers are skipped so the stack of the first underlying cause shows.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	target := err
	for {
		e, ok := target.(*Error)
		if !ok || e.cause == nil {
			break
		}
		target = e.cause
	}
	s := fmt.Sprintf("%+v", target)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// Kind is the stable error category exposed to API clients.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "authorization"
	KindConcurrency   Kind = "concurrency"
	KindInternal      Kind = "internal"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindValidation, KindConflict, KindNotFound, KindAuthorization, KindConcurrency, KindInternal:
		return true
	default:
		return false
	}
}

// Error is a categorized error. Two Errors match under errors.Is when their codes are equal,
// so a sentinel keeps matching after WithCause attaches a low-level cause.
type Error struct {
	kind  Kind
	code  string
	msg   string
	cause error
}

func NewKind(kind Kind, code, msg string) *Error {
	return &Error{kind: kind, code: code, msg: msg}
}

func Validation(code, msg string) *Error    { return NewKind(KindValidation, code, msg) }
func Conflict(code, msg string) *Error      { return NewKind(KindConflict, code, msg) }
func NotFound(code, msg string) *Error      { return NewKind(KindNotFound, code, msg) }
func Authorization(code, msg string) *Error { return NewKind(KindAuthorization, code, msg) }
func Concurrency(code, msg string) *Error   { return NewKind(KindConcurrency, code, msg) }
func Internal(code, msg string) *Error      { return NewKind(KindInternal, code, msg) }

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Code() string    { return e.code }
func (e *Error) Message() string { return e.msg }

func (e *Error) Error() string {
	if e.cause != nil {
		return e.code + ": " + e.msg + ": " + e.cause.Error()
	}
	return e.code + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.code == e.code
}

// WithCause returns a copy of e that wraps cause.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// WithMessage returns a copy of e with a more specific message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.msg = msg
	return &cp
}

// Retryable reports whether a client may retry the same request unchanged.
func (e *Error) Retryable() bool {
	return e.kind == KindConcurrency
}

// As returns the outermost categorized error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the category of err; uncategorized errors are internal.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.kind
	}
	return KindInternal
}
