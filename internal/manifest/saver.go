package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilePerm is the permission used when the manifest is created.
const FilePerm os.FileMode = 0o644

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Saver writes manifest text into a directory.
type Saver struct {
	dir    string
	opener FileOpener
}

// NewSaver creates a Saver for dir. A nil opener selects the os implementation.
func NewSaver(dir string, opener FileOpener) *Saver {
	if opener == nil {
		opener = &osFileOpener{}
	}
	return &Saver{dir: dir, opener: opener}
}

// Path returns the full path of the manifest file.
func (s *Saver) Path() string {
	return filepath.Join(s.dir, Filename)
}

// Save writes data to the manifest file, replacing any existing content.
func (s *Saver) Save(data []byte) error {
	path := s.Path()

	file, err := s.opener.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	return nil
}
