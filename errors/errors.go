package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate Phase = "validate" // argument validation, before any I/O
	PhaseLocate   Phase = "locate"   // entry lookup inside the archive
	PhaseLoad     Phase = "load"     // delegation to the module loader
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindModuleNotFound  Kind = "module_not_found"
	KindSymbolsNotFound Kind = "symbols_not_found"
	KindNotInitialized  Kind = "not_initialized"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Param  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Param != "" {
		b.WriteString(": ")
		b.WriteString(e.Param)
	}

	if e.Detail != "" {
		if e.Param != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for the library's failure modes

// InvalidArgument creates a validation error naming the offending parameter
func InvalidArgument(param, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidArgument,
		Param:  param,
		Detail: detail,
	}
}

// ModuleNotFound indicates the named module entry is absent from the archive
func ModuleNotFound(name string) *Error {
	return &Error{
		Phase:  PhaseLocate,
		Kind:   KindModuleNotFound,
		Detail: fmt.Sprintf("module entry %q not found in archive", name),
	}
}

// SymbolsNotFound indicates symbols were explicitly requested but the
// derived symbol entry is absent from the archive
func SymbolsNotFound(name string) *Error {
	return &Error{
		Phase:  PhaseLocate,
		Kind:   KindSymbolsNotFound,
		Detail: fmt.Sprintf("symbol entry %q not found in archive", name),
	}
}

// NotInitialized indicates a required collaborator was not provided
func NotInitialized(what string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", what),
	}
}
