// Package file persists the session record as a single JSON file on disk,
// the durable analog of the browser's keyed storage record.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vetclinic/clinic-client/internal/core/domain"
)

// RecordStore keeps the serialized session at a fixed path. The file is
// written with owner-only permissions since it names an authenticated
// identity.
type RecordStore struct {
	path string
}

func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

func (s *RecordStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("read session record: %w", err)
	}
	return data, nil
}

func (s *RecordStore) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// Delete removes the record. A missing file is not an error; logout must
// succeed even when the record was already absent.
func (s *RecordStore) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}
