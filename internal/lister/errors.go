package lister

import (
	"fmt"

	"github.com/rescale/lsext/internal/constants"
)

// UsageError reports that the required positional arguments were not supplied.
type UsageError struct {
	Program string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf(constants.UsageFormat, e.Program, e.Program)
}

// FilesystemError reports that a folder could not be enumerated.
type FilesystemError struct {
	Folder string
	Err    error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Folder, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
