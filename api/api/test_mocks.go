/* test_mocks.go
 * Contains mock structures for testing the API package and its consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"sort"

	"matchpost-bot/api/shared"
	"matchpost-bot/api/store"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Storage for mock data
	Profiles map[string]shared.TemplateProfile

	// Error injection for testing error paths
	GetTemplateProfileError   error
	StoreTemplateProfileError error
	ListTemplateProfilesError error

	DatabaseName string
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements the minimal Client interface needed for tests
type mockClient struct{}

func (m *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore holding the given profiles
func NewMockStore(profiles ...shared.TemplateProfile) *MockStore {
	m := &MockStore{
		Profiles:     make(map[string]shared.TemplateProfile),
		DatabaseName: "test_db",
	}
	for _, profile := range profiles {
		m.Profiles[profile.Name] = profile
	}
	return m
}

func (m *MockStore) GetTemplateProfile(name string) (shared.TemplateProfile, error) {
	if m.GetTemplateProfileError != nil {
		return shared.TemplateProfile{}, m.GetTemplateProfileError
	}
	profile, ok := m.Profiles[name]
	if !ok {
		return shared.TemplateProfile{}, fmt.Errorf("%w: %s", store.ErrProfileNotFound, name)
	}
	return profile, nil
}

func (m *MockStore) StoreTemplateProfile(profile shared.TemplateProfile) error {
	if m.StoreTemplateProfileError != nil {
		return m.StoreTemplateProfileError
	}
	if err := store.ValidateProfile(profile); err != nil {
		return err
	}
	m.Profiles[profile.Name] = profile
	return nil
}

func (m *MockStore) ListTemplateProfiles() ([]string, error) {
	if m.ListTemplateProfilesError != nil {
		return nil, m.ListTemplateProfilesError
	}
	var names []string
	for name := range m.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements store.Interface
var _ store.Interface = (*MockStore)(nil)

// MockRenderer records every call made to it
type MockRenderer struct {
	Single            []shared.MatchPost
	Bulk              [][]shared.MatchPost
	NoMatchesReports  int
	EmptyInputReports int

	ErrorToReturn error
}

func (m *MockRenderer) RenderSingle(post shared.MatchPost) error {
	m.Single = append(m.Single, post)
	return m.ErrorToReturn
}

func (m *MockRenderer) RenderBulk(posts []shared.MatchPost) error {
	m.Bulk = append(m.Bulk, posts)
	return m.ErrorToReturn
}

func (m *MockRenderer) ReportNoMatches() error {
	m.NoMatchesReports++
	return m.ErrorToReturn
}

func (m *MockRenderer) ReportEmptyBulkInput() error {
	m.EmptyInputReports++
	return m.ErrorToReturn
}

// MockCopier records copied text and fails for any value in FailOn
type MockCopier struct {
	Copied []string
	FailOn map[string]bool
}

func (m *MockCopier) CopyText(value string) bool {
	if m.FailOn[value] {
		return false
	}
	m.Copied = append(m.Copied, value)
	return true
}
