package ports

// SessionRecordStore persists the single keyed record backing the session
// store. Load returns domain.ErrRecordNotFound when no record exists;
// Delete on an absent record is a no-op.
type SessionRecordStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Delete() error
}
