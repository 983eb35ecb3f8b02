// Package errors is the single errors import for gateway and domain code:
// stdlib tree inspection plus pkg/errors stack traces.
package errors

import (
	"context"
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// IsCanceled reports whether err comes from the caller giving up rather than
// from anything going wrong: the UI event was abandoned or timed out.
func IsCanceled(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func WithStack(err error) error { return pkgerrors.WithStack(err) }
