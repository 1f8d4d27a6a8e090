/* main_test.go
 * Contains unit tests for utils.go functions
 * Authors: Zachary Bower
 */

package main

import (
	"os"
	"path/filepath"
	"testing"

	"matchpost-bot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStrToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"true", true, false},
		{"false", false, false},
		{"TRUE", true, false},
		{"FALSE", false, false},
		{"TrUe", true, false},
		{"  true  ", true, false},
		{"yes", false, true},
		{"", false, true},
		{"1", false, true},
		{"   ", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := convertStrToBool(tt.input)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid boolean string")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func memoryConfig(templatesPath string) *config.Config {
	return &config.Config{
		Templates: config.TemplatesConfig{Path: templatesPath, DefaultProfile: "default"},
	}
}

// region setupAPI tests

func TestSetupAPI_SeedsFromExampleTemplates(t *testing.T) {
	a, s, err := setupAPI(memoryConfig("templates.example.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "memory", s.GetDatabase().Name())
	assert.Equal(t, "default", a.DefaultProfile)

	names, err := a.GetProfiles()
	require.NoError(t, err)
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "ncaa")
}

func TestSetupAPI_MissingTemplatesFile(t *testing.T) {
	a, _, err := setupAPI(memoryConfig(filepath.Join(t.TempDir(), "missing.yaml")))

	require.NoError(t, err)
	names, err := a.GetProfiles()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSetupAPI_InvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: empty\n"), 0o600))

	_, _, err := setupAPI(memoryConfig(path))

	assert.ErrorContains(t, err, "no template sets")
}

func TestSetupAPI_EmptyDefaultProfile(t *testing.T) {
	cfg := memoryConfig("templates.example.yaml")
	cfg.Templates.DefaultProfile = ""

	_, _, err := setupAPI(cfg)

	assert.Error(t, err)
}

// endregion
