package blob

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotExist is returned by Read when the referenced blob is missing,
// which callers surface as a data-integrity not-found.
var ErrNotExist = errors.New("blob does not exist")

// Store writes file content under a single content root, naming each blob
// by a generated opaque id.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

// Root returns the content root directory.
func (s *Store) Root() string { return s.root }

// Write persists data to a new unique path and returns that path.
// Zero-byte content still occupies a path.
func (s *Store) Write(data []byte) (string, error) {
	path := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}
