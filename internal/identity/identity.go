package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eduquiz/internal/kvstore"
)

const (
	NameKey     = "quiz_user_name"
	DefaultName = "Usuário"
)

var ErrNoIdentity = errors.New("no user name set")

// Manager owns the display name of the person playing. History is not
// partitioned by it: switching or clearing the name leaves every archived
// record in place.
type Manager struct {
	store kvstore.Store
	name  string
}

// NewManager loads the stored name, if any.
func NewManager(ctx context.Context, store kvstore.Store) (*Manager, error) {
	name, _, err := store.Get(ctx, NameKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user name: %w", err)
	}
	return &Manager{
		store: store,
		name:  strings.TrimSpace(name),
	}, nil
}

func (m *Manager) Name() string {
	return m.name
}

func (m *Manager) HasName() bool {
	return m.name != ""
}

// Require returns the current name or ErrNoIdentity.
func (m *Manager) Require() (string, error) {
	if m.name == "" {
		return "", ErrNoIdentity
	}
	return m.name, nil
}

// SetName stores name; a blank name falls back to DefaultName.
func (m *Manager) SetName(ctx context.Context, name string) (string, error) {
	normalized := normalizeName(name)
	if err := m.store.Set(ctx, NameKey, normalized); err != nil {
		return "", fmt.Errorf("failed to save user name: %w", err)
	}
	m.name = normalized
	return normalized, nil
}

func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Remove(ctx, NameKey); err != nil {
		return fmt.Errorf("failed to clear user name: %w", err)
	}
	m.name = ""
	return nil
}

func normalizeName(name string) string {
	normalized := strings.Join(strings.Fields(name), " ")
	if normalized == "" {
		return DefaultName
	}
	return normalized
}
