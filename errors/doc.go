// Package errors provides structured error types for the wasm-archive library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). All errors implement the standard error interface and support
// errors.Is/As; two *Error values match under errors.Is when Phase and Kind
// agree, so callers can test for a category:
//
//	if errors.Is(err, errors.ModuleNotFound("")) {
//	    // the named module entry is absent from the archive
//	}
//
// I/O failures from the archive reader and failures from the module-loading
// capability are intentionally not represented here: they propagate to the
// caller unmodified.
package errors
