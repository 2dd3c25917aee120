package objsys

import (
	"os"

	"github.com/cwbudde/redart/internal/object"
)

// InternalFile is the backing store for the `File` builtin type. Its
// only capability is reading the whole file as text. Opening a path
// that does not exist is an error surfaced by the caller; each read
// opens the path afresh, so a second read returns the file's current
// contents again.
type InternalFile struct {
	ID     object.RefKey
	Path   string
	marked bool
}

// OpenInternalFile opens path and registers a new InternalFile. The
// file is read in full and closed immediately by ReadAsString; redart
// has no streaming file API, so there is nothing to keep open between
// calls.
func OpenInternalFile(id object.RefKey, path string) (*InternalFile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return &InternalFile{ID: id, Path: path}, nil
}

func (f *InternalFile) ReadAsString() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
