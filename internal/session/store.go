// Package session holds the client's authentication state and keeps it in
// lock-step with a durable keyed record, so a restart resumes the session.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vetclinic/clinic-client/internal/core/domain"
	"github.com/vetclinic/clinic-client/internal/core/ports"
)

// Store is the single source of truth for the current session. It is an
// explicitly constructed, injectable object: Init once at startup, then
// Login/Logout/Current from anywhere. Mutators are serialized; Current is
// a cheap in-memory read that never touches the record store.
type Store struct {
	mu      sync.RWMutex
	current *domain.Session
	records ports.SessionRecordStore
	log     zerolog.Logger

	subMu   sync.Mutex
	subs    map[int]func(*domain.Session)
	nextSub int
}

func NewStore(records ports.SessionRecordStore, log zerolog.Logger) *Store {
	return &Store{
		records: records,
		log:     log,
		subs:    make(map[int]func(*domain.Session)),
	}
}

// Init restores the session from the persisted record. A missing or
// malformed record is logged and treated as logged-out; Init never fails.
func (s *Store) Init() {
	data, err := s.records.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.log.Warn().Err(err).Msg("session record unreadable, starting logged out")
		}
		return
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Identifier == "" || !sess.Authenticated {
		s.log.Warn().Err(err).Msg("malformed session record, starting logged out")
		return
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	s.log.Info().Str("identifier", sess.Identifier).Str("role", string(sess.Role)).Msg("session restored")
}

// Login replaces any prior session with one built from the login result
// (last login wins), persists it, and notifies subscribers. The in-memory
// session is installed even when persistence fails; the error is returned
// so the caller can surface it.
func (s *Store) Login(res *ports.LoginResult) (*domain.Session, error) {
	sess := &domain.Session{
		Identifier:    res.Username,
		Role:          domain.ResolveRole(res.Roles),
		Authenticated: true,
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	var persistErr error
	data, err := json.Marshal(sess)
	if err == nil {
		persistErr = s.records.Save(data)
	} else {
		persistErr = err
	}
	if persistErr != nil {
		s.log.Error().Err(persistErr).Msg("failed to persist session record")
	}

	s.notify(sess)
	return sess, persistErr
}

// Logout clears both the in-memory session and the persisted record, then
// notifies subscribers. It is idempotent: clearing an absent record is not
// an error.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	err := s.records.Delete()
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		s.log.Error().Err(err).Msg("failed to clear session record")
	} else {
		err = nil
	}

	s.notify(nil)
	return err
}

// Current returns the in-memory session, or nil when logged out.
func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers fn to be called with the new session (nil on logout)
// after every mutation. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(*domain.Session)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(sess *domain.Session) {
	s.subMu.Lock()
	fns := make([]func(*domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}
