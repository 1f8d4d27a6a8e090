/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"matchpost-bot/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests and for running without a database.
type Interface interface {
	GetTemplateProfile(name string) (shared.TemplateProfile, error)
	StoreTemplateProfile(profile shared.TemplateProfile) error
	ListTemplateProfiles() ([]string, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store and MemoryStore implement Interface
var (
	_ Interface = (*Store)(nil)
	_ Interface = (*MemoryStore)(nil)
)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
