/* template_profiles.go
 * Contains the methods for interacting with the template_profiles collection
 * Authors: Zachary Bower
 */

package store

import (
	"errors"
	"fmt"
	"sort"

	"matchpost-bot/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetTemplateProfile does DB lookup and gets a template profile by name
// Preconditions: Receives the profile name
// Postconditions: Returns the profile if it exists, ErrProfileNotFound if it doesn't, or another error if it occurs
func (s *Store) GetTemplateProfile(name string) (shared.TemplateProfile, error) {
	ctx, cancel := opContext()
	defer cancel()

	var doc TemplateProfileDoc
	err := s.Collections.TemplateProfiles.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.TemplateProfile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}
		return shared.TemplateProfile{}, fmt.Errorf("error fetching template profile from db: %w", err)
	}
	return doc.Profile, nil
}

// StoreTemplateProfile stores a template profile in the db
// Preconditions: Receives a profile with a name and at least one template set
// Postconditions: Inserts the profile or replaces the existing profile with the same name, or returns an error
func (s *Store) StoreTemplateProfile(profile shared.TemplateProfile) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()

	filter := bson.M{"name": profile.Name}
	opts := options.Replace().SetUpsert(true)
	_, err := s.Collections.TemplateProfiles.ReplaceOne(ctx, filter, TemplateProfileDoc{Profile: profile}, opts)
	if err != nil {
		return fmt.Errorf("failed to store template profile %s: %w", profile.Name, err)
	}
	return nil
}

// ListTemplateProfiles returns the names of all stored profiles in alphabetical order
func (s *Store) ListTemplateProfiles() ([]string, error) {
	ctx, cancel := opContext()
	defer cancel()

	cursor, err := s.Collections.TemplateProfiles.Find(ctx, bson.D{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("error fetching template profiles from db: %w", err)
	}

	var docs []TemplateProfileDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of profiles: %w", err)
	}

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Profile.Name)
	}
	sort.Strings(names)
	return names, nil
}
