// Package session owns the authenticated identity and credential held by the
// client while a user is logged in, mirrored to disk so it survives restarts.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Adi-cmrec/lenslink/internal/api"
)

// Sentinel errors
var (
	ErrPersist = errors.New("session: failed to persist")
)

// Session is the durable {token, user} pair. Token and user are always set
// and cleared together.
type Session struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// valid reports whether a restored session is complete enough to trust.
// Partial or malformed state is treated as "no session".
func (s Session) valid() bool {
	return s.Token != "" && s.User.ID != "" && s.User.Email != ""
}

// Store is the single owner of the session. All other components read
// authentication state through it and never write it.
type Store struct {
	mu      sync.RWMutex
	path    string
	current *Session
}

// NewStore creates a store persisting to the given file path. The parent
// directory is created with 0700 permissions. No session is established
// until Restore or Login is called.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Restore establishes the session from any durably persisted state without
// contacting the server. Missing, malformed, or partial state leaves the
// store unauthenticated and is not an error.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || !sess.valid() {
		// Corrupt or partial state: treat as no session.
		s.current = nil
		return nil
	}

	s.current = &sess
	return nil
}

// Login establishes the session and persists it before returning, so memory
// and storage never stay inconsistent across a crash.
func (s *Store) Login(token string, user api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{Token: token, User: user}
	if err := s.writeLocked(&sess); err != nil {
		return err
	}
	s.current = &sess
	return nil
}

// Logout clears the session and erases the persisted state before returning.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove: %v", ErrPersist, err)
	}
	s.current = nil
	return nil
}

// IsAuthenticated reports whether a session is established.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// CurrentUser returns the authenticated identity, or a zero User when logged out.
func (s *Store) CurrentUser() api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return api.User{}
	}
	return s.current.User
}

// Token returns the bearer credential, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// writeLocked persists the session atomically using the temp file + rename
// pattern. The file is fully overwritten, never merged. Must be called with
// the write lock held.
func (s *Store) writeLocked(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmpPath := s.path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", ErrPersist, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write: %v", ErrPersist, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: fsync: %v", ErrPersist, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close: %v", ErrPersist, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename: %v", ErrPersist, err)
	}

	return nil
}
