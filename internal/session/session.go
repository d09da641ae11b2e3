package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// State is the durable session record. The navigation gate reads only the
// authenticated flag; the rest is for the CLI surface.
type State struct {
	Authenticated bool      `yaml:"authenticated"`
	Username      string    `yaml:"username,omitempty"`
	UpdatedAt     time.Time `yaml:"updated_at,omitempty"`
}

// Store persists session state to a YAML file. A missing file reads as a
// logged-out session.
type Store struct {
	path string

	mu    sync.Mutex
	state State
}

// Open loads session state from path, tolerating a missing file.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.state); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	return s, nil
}

// IsAuthenticated reports the durable authentication flag.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Authenticated
}

// Username returns the logged-in username, empty if logged out.
func (s *Store) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Username
}

// Login marks the session authenticated and persists it.
func (s *Store) Login(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Authenticated: true, Username: username, UpdatedAt: time.Now().UTC()}
	return s.save()
}

// Logout clears the session and persists it. Idempotent.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{UpdatedAt: time.Now().UTC()}
	return s.save()
}

func (s *Store) save() error {
	data, err := yaml.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Memory is an in-process session flag for tests and for wiring the gate
// without touching disk.
type Memory struct {
	mu            sync.Mutex
	authenticated bool
}

// NewMemory returns a Memory session with the given initial flag.
func NewMemory(authenticated bool) *Memory {
	return &Memory{authenticated: authenticated}
}

// IsAuthenticated reports the in-memory flag.
func (m *Memory) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// SetAuthenticated updates the in-memory flag.
func (m *Memory) SetAuthenticated(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authenticated = v
}
