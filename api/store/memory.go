/* memory.go
 * Contains MemoryStore, an in-process store used when no MONGO_PROD_URI is configured. Profiles are usually seeded from the
 * templates yaml file at startup
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"matchpost-bot/api/shared"
)

type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]shared.TemplateProfile
}

// NewMemoryStore creates a MemoryStore holding the given profiles
// Preconditions: Receives zero or more template profiles
// Postconditions: Returns the store, or an error if a profile is invalid
func NewMemoryStore(profiles ...shared.TemplateProfile) (*MemoryStore, error) {
	m := &MemoryStore{profiles: make(map[string]shared.TemplateProfile)}
	for _, profile := range profiles {
		if err := m.StoreTemplateProfile(profile); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MemoryStore) GetTemplateProfile(name string) (shared.TemplateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.profiles[name]
	if !ok {
		return shared.TemplateProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return profile, nil
}

func (m *MemoryStore) StoreTemplateProfile(profile shared.TemplateProfile) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.Name] = profile
	return nil
}

func (m *MemoryStore) ListTemplateProfiles() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

type memoryDatabase struct{}

func (memoryDatabase) Name() string {
	return "memory"
}

type memoryClient struct{}

func (memoryClient) Disconnect(context.Context) error {
	return nil
}

// GetDatabase returns a placeholder database so callers can log which backend is in use
func (m *MemoryStore) GetDatabase() interface{ Name() string } {
	return memoryDatabase{}
}

// GetClient returns a client whose Disconnect is a no-op
func (m *MemoryStore) GetClient() interface{ Disconnect(context.Context) error } {
	return memoryClient{}
}
