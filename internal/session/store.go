// Package session holds the authenticated user state: anonymous or
// authenticated-admin, nothing in between. The session is persisted as a
// single JSON file under the data directory and restored at startup; a
// persisted session with any role other than admin is treated as corrupt
// and discarded.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MrRedFox1223/wdash/internal/api"
	"github.com/MrRedFox1223/wdash/internal/model"
)

// AuthAPI is the slice of the remote service the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// ErrNotAuthenticated is returned by operations that require an
// authenticated-admin session.
var ErrNotAuthenticated = errors.New("not logged in")

// Store is an explicit session-store object with a defined lifecycle:
// Restore at startup, Login/Logout/ChangePassword as explicit mutations.
// It is not safe for concurrent use; the CLI drives it from one goroutine.
type Store struct {
	base    string
	current *model.Session
}

// NewStore creates a session store persisting under base (e.g. ~/.wdash).
func NewStore(base string) *Store {
	return &Store{base: base}
}

func (s *Store) filePath() string {
	return filepath.Join(s.base, "session.json")
}

// Restore loads the persisted session, if any. A session that fails to
// parse or whose role is not admin is deleted and the store stays
// anonymous. Restore never fails the startup path; it reports the state it
// settled on.
func (s *Store) Restore() {
	path := s.filePath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		_ = os.Remove(path)
		return
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil || !sess.IsAdmin() {
		_ = os.Remove(path)
		return
	}
	s.current = &sess
}

// Current returns the active session, or nil when anonymous.
func (s *Store) Current() *model.Session {
	return s.current
}

// IsAdmin reports whether the store holds an authenticated-admin session.
func (s *Store) IsAdmin() bool {
	return s.current.IsAdmin()
}

// Token returns the bearer token for write operations, or "" when
// anonymous. Satisfies api.TokenSource.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Login authenticates against the remote service. Only an admin session is
// accepted and persisted; any other role or a failed call leaves the store
// anonymous. The returned error carries a user-facing message.
func (s *Store) Login(ctx context.Context, cli AuthAPI, username, password string) error {
	sess, err := cli.Login(ctx, username, password)
	if err != nil {
		var se *api.StatusError
		if errors.As(err, &se) && (se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden) {
			return errors.New("incorrect username or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if !sess.IsAdmin() {
		return errors.New("only the administrator can sign in")
	}

	s.current = &sess
	if err := s.save(); err != nil {
		// The session is still usable for this run.
		fmt.Fprintf(os.Stderr, "Warning: could not persist session: %v\n", err)
	}
	return nil
}

// Logout clears the in-memory session and the persisted file.
func (s *Store) Logout() error {
	s.current = nil
	if err := os.Remove(s.filePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// ChangePassword replaces the current password. Only meaningful in the
// authenticated-admin state. Error codes map to fixed messages: 401 means
// the current password was wrong, 400 means the new password equals the
// current one; anything else passes the server message through.
func (s *Store) ChangePassword(ctx context.Context, cli AuthAPI, current, newPassword string) error {
	if !s.IsAdmin() {
		return ErrNotAuthenticated
	}

	err := cli.ChangePassword(ctx, current, newPassword)
	if err == nil {
		return nil
	}

	var se *api.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized:
			return errors.New("incorrect current password")
		case http.StatusBadRequest:
			return errors.New("new password is the same as the current password")
		}
	}
	return fmt.Errorf("password change failed: %w", err)
}

// save atomically persists the current session with owner-only permissions.
func (s *Store) save() error {
	if s.current == nil {
		return nil
	}
	path := s.filePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}
	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving session file: %w", err)
	}
	return nil
}
