/* templates.go
 * Contains the loader for the templates yaml file. The file holds a list of template profiles, e.g.
 *
 *   profiles:
 *     - name: nba
 *       default:
 *         title: "{Team A} vs {Team B} | {Date}"
 *         description: "Tip off at {Time}"
 *         tags: ["#{Team A}", "#{Team B}", "#NBA"]
 *
 * Authors: Zachary Bower
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"matchpost-bot/api/shared"

	"gopkg.in/yaml.v3"
)

type TemplatesFile struct {
	Profiles []shared.TemplateProfile `yaml:"profiles"`
}

// LoadTemplates reads the template profiles from a yaml file
// Preconditions: Receives the path of the templates file
// Postconditions: Returns the profiles in file order. A missing file returns no profiles and no error, a malformed file
// or a profile without a name returns an error
func LoadTemplates(path string) ([]shared.TemplateProfile, error) {
	if path == "" {
		return nil, errors.New("templates path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes the contents of a templates file
func ParseTemplates(data []byte) ([]shared.TemplateProfile, error) {
	var file TemplatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}

	seen := make(map[string]bool)
	for i, profile := range file.Profiles {
		if profile.Name == "" {
			return nil, fmt.Errorf("profile %d has no name", i+1)
		}
		if seen[profile.Name] {
			return nil, fmt.Errorf("profile '%s' is defined more than once", profile.Name)
		}
		seen[profile.Name] = true
	}
	return file.Profiles, nil
}
