package scanner

import (
	"fmt"
	"os"
	"strings"
)

// DefaultSuffix marks a directory entry as an image asset bundle.
const DefaultSuffix = ".imageset"

// DirectoryReadError is returned when the source directory cannot be listed.
type DirectoryReadError struct {
	Dir string
	Err error
}

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("could not read directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error {
	return e.Err
}

var readDir = os.ReadDir

// Scan returns the raw asset names found in dir, one per entry whose name ends
// with suffix, in listing order. Files and directories are treated alike.
func Scan(dir, suffix string) ([]string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	entries, err := readDir(dir)
	if err != nil {
		return nil, &DirectoryReadError{Dir: dir, Err: err}
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, suffix))
	}

	return names, nil
}
