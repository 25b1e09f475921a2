package archive

import (
	"archive/zip"
	"io"
	"strings"

	"github.com/wippyai/wasm-archive/errors"
)

// Result is the outcome of a Locate call. Found=false implies Bytes is nil
// and Name is empty; Found=true implies both are populated.
type Result struct {
	Bytes []byte
	Name  string
	Found bool
}

// Locate scans r's entries for the first whose full in-archive path equals
// name under case-insensitive comparison and reads it fully into memory.
// Archives holding duplicate names differing only in case are not
// disambiguated further; the first match wins. Locate never closes r.
func Locate(name string, r *zip.Reader) (Result, error) {
	if name == "" {
		return Result{}, errors.InvalidArgument("name", "must not be empty")
	}

	for _, f := range r.File {
		if !strings.EqualFold(f.Name, name) {
			continue
		}

		data, err := readEntry(f)
		if err != nil {
			return Result{}, err
		}
		return Result{Bytes: data, Name: f.Name, Found: true}, nil
	}

	return Result{}, nil
}

// readEntry extracts a single entry's bytes. Read failures surface
// unmodified; they indicate a corrupt archive or entry stream.
func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
