/* models.go
 * This file contain the structs, errors and helper functions that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"errors"
	"fmt"

	"matchpost-bot/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrProfileNotFound = errors.New("template profile not found")

// TemplateProfileDoc represents the way a template profile is stored in the DB
type TemplateProfileDoc struct {
	ID      primitive.ObjectID     `bson:"_id,omitempty"`
	Profile shared.TemplateProfile `bson:",inline"`
}

// ValidateProfile checks a profile can be used to render posts
// Preconditions: Receives a template profile
// Postconditions: Returns nil if the profile has a name and at least one template set, else an error
func ValidateProfile(profile shared.TemplateProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("template profile name cannot be empty")
	}
	if profile.Default == nil && profile.Men == nil && profile.Women == nil {
		return fmt.Errorf("template profile %s has no template sets", profile.Name)
	}
	return nil
}
