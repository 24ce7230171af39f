package top

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of errors returned by this package. Use errors.Is to check for them.
var (
	ErrMissingName          = errors.New("topology must have a name")
	ErrAmbiguousName        = errors.New("system name ambiguous")
	ErrUnsupportedDirective = errors.New("preprocessor directive not supported here")
	ErrMalformedMolecule    = errors.New("malformed molecules entry")
)

// Error is the error type for the top package. It carries the input file and line
// that caused the problem, when known, and can be decorated with the names of the
// functions it went through, as the goChem errors.
type Error struct {
	kind     error
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based, 0 if it doesn't apply
	deco     []string
}

func newError(kind error, line int, format string, a ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, a...), line: line}
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("gromacs topology")
	if err.filename != "" {
		b.WriteString(" " + err.filename)
	}
	if err.line > 0 {
		fmt.Fprintf(&b, " line %d", err.line)
	}
	b.WriteString(": " + err.kind.Error())
	if err.message != "" {
		b.WriteString(": " + err.message)
	}
	return b.String()
}

// Unwrap returns the kind of the error (ErrMissingName, ErrAmbiguousName, etc).
func (err *Error) Unwrap() error { return err.kind }

// Decorate adds deco to the decoration slice and returns the result.
// An empty string just returns the current slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the name of the file associated to the error, if any.
func (err *Error) FileName() string { return err.filename }

// Line returns the line where the error was found, or 0.
func (err *Error) Line() int { return err.line }

// adds the filename to errors coming from this package, and
// wraps the rest.
func fileError(err error, filename, caller string) error {
	var terr *Error
	if errors.As(err, &terr) {
		terr.filename = filename
		terr.Decorate(caller)
		return terr
	}
	return fmt.Errorf("%s: %s: %w", caller, filename, err)
}
