// Package errors is the project's error facade: stdlib matching, pkg/errors
// stack traces, and helpers for reporting where a failed fixture run broke.
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// facadePrefix is this package's qualified name prefix, e.g. "storefront/internal/errors.".
var facadePrefix = func() string {
	pc, _, _, _ := runtime.Caller(0)
	name := runtime.FuncForPC(pc).Name()
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash:], ".")

	return name[:slash+dot+1]
}()

// facadeFuncs record stacks on behalf of their caller and never count as an origin.
var facadeFuncs = map[string]bool{"Wrap": true, "Wrapf": true, "WithStack": true, "Errorf": true}

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// AsType finds the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with a stack trace and message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf annotates err with a stack trace and a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Origin returns "function (file:line)" of the innermost stack trace in err's
// tree, or "" when nothing in the tree recorded one. Multi-error branches are
// walked in order, so the last cause wins over a leading class sentinel.
func Origin(err error) string {
	var origin string
	walk(err, func(e error) {
		st, ok := e.(stackTracer)
		if !ok {
			return
		}
		for _, f := range st.StackTrace() {
			fn := runtime.FuncForPC(uintptr(f) - 1)
			if fn != nil && facadeFuncs[strings.TrimPrefix(fn.Name(), facadePrefix)] {
				continue
			}
			origin = fmt.Sprintf("%n (%s:%d)", f, f, f)

			break
		}
	})

	return origin
}

func walk(err error, visit func(error)) {
	if err == nil {
		return
	}
	visit(err)

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		walk(u.Unwrap(), visit)
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			walk(e, visit)
		}
	}
}
