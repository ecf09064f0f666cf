package files

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrInvalidPath  = errors.New("not a valid file")
	ErrInaccessible = errors.New("not accessible")
)

// Filesystem access, swapped in tests to reach states the running user can't produce.
var (
	statFile = os.Stat
	openFile = os.Open
)

type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path '%s' is %s", e.Path, e.Err.Error())
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Validate checks that path names an existing regular file that can be opened for reading.
// Symlinks are followed. The returned error wraps ErrInvalidPath or ErrInaccessible.
func Validate(path string) error {
	if path == "" {
		return &PathError{Path: path, Err: ErrInvalidPath}
	}

	// A path that can't be stat-ed, even for lack of permission, is not known to exist.
	info, err := statFile(path)
	if err != nil {
		return &PathError{Path: path, Err: ErrInvalidPath}
	}

	if !info.Mode().IsRegular() {
		return &PathError{Path: path, Err: ErrInvalidPath}
	}

	f, err := openFile(path)
	if err != nil {
		return &PathError{Path: path, Err: ErrInaccessible}
	}

	f.Close()

	return nil
}
