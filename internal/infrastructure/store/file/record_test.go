package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vetclinic/clinic-client/internal/core/domain"
)

func TestRecordStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewRecordStore(path)

	record := []byte(`{"identifier":"12345678A","role":"USER","authenticated":true}`)
	if err := store.Save(record); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(record) {
		t.Fatalf("roundtrip mismatch: %s", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("record must be owner-only, got %o", perm)
	}
}

func TestRecordStore_LoadMissing(t *testing.T) {
	store := NewRecordStore(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := store.Load(); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordStore_DeleteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewRecordStore(path)

	if err := store.Save([]byte(`{}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
}
