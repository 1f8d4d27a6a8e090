/* config_test.go
 * Contains unit tests for config.go and templates.go
 * Authors: Zachary Bower
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"matchpost-bot/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region LoadFromEnv tests

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"MONGO_PROD_URI", "MONGO_DB_NAME", "TEMPLATES_PATH", "DEFAULT_PROFILE", "WEB_ENABLED", "WEB_ADDR", "DISCORD_MESSAGE_RATE"} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()

	assert.Equal(t, "matchpost", cfg.Mongo.DBName)
	assert.Equal(t, "templates.yaml", cfg.Templates.Path)
	assert.Equal(t, "default", cfg.Templates.DefaultProfile)
	assert.False(t, cfg.Web.Enabled)
	assert.Equal(t, ":8080", cfg.Web.Addr)
	assert.Equal(t, 1.0, cfg.Discord.MessageRate)
	assert.False(t, cfg.UseMongo())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("MONGO_PROD_URI", "mongodb://localhost:27017")
	t.Setenv("WEB_ENABLED", "TRUE")
	t.Setenv("DISCORD_MESSAGE_RATE", "2.5")
	t.Setenv("DEFAULT_PROFILE", "nba")

	cfg := LoadFromEnv()

	assert.True(t, cfg.UseMongo())
	assert.True(t, cfg.Web.Enabled)
	assert.Equal(t, 2.5, cfg.Discord.MessageRate)
	assert.Equal(t, "nba", cfg.Templates.DefaultProfile)
}

func TestLoadFromEnv_InvalidRateUsesDefault(t *testing.T) {
	t.Setenv("DISCORD_MESSAGE_RATE", "fast")
	assert.Equal(t, 1.0, LoadFromEnv().Discord.MessageRate)
}

// endregion

// region Validate tests

func TestValidate(t *testing.T) {
	cfg := &Config{
		Discord:   DiscordConfig{ProdToken: "prod", MessageRate: 1},
		Templates: TemplatesConfig{DefaultProfile: "default"},
	}

	assert.NoError(t, cfg.Validate(false))
	assert.Error(t, cfg.Validate(true))

	cfg.Discord.BetaToken = "beta"
	assert.NoError(t, cfg.Validate(true))
	assert.Equal(t, "beta", cfg.DiscordToken(true))
	assert.Equal(t, "prod", cfg.DiscordToken(false))

	cfg.Discord.MessageRate = 0
	assert.Error(t, cfg.Validate(false))
}

// endregion

// region templates tests

func TestParseTemplates_Variants(t *testing.T) {
	data := []byte(`
profiles:
  - name: ncaa
    default:
      title: "{Team A} vs {Team B}"
    men:
      title: "M: {Team A} vs {Team B}"
      tags: ["#{Team A}"]
    women:
      title: "W: {Team A} vs {Team B}"
    teams: [Duke, UNC]
`)

	profiles, err := ParseTemplates(data)

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	profile := profiles[0]
	assert.Equal(t, "ncaa", profile.Name)
	assert.True(t, profile.HasVariants())
	assert.Equal(t, "M: {Team A} vs {Team B}", profile.Men.Title)
	assert.Equal(t, []string{"#{Team A}"}, profile.Men.Tags)
	assert.Equal(t, []string{"Duke", "UNC"}, profile.Teams)
}

func TestParseTemplates_MissingName(t *testing.T) {
	_, err := ParseTemplates([]byte("profiles:\n  - default:\n      title: x\n"))
	assert.Error(t, err)
}

func TestParseTemplates_DuplicateName(t *testing.T) {
	_, err := ParseTemplates([]byte("profiles:\n  - name: a\n  - name: a\n"))
	assert.Error(t, err)
}

func TestParseTemplates_Malformed(t *testing.T) {
	_, err := ParseTemplates([]byte("profiles: [this is: not valid"))
	assert.Error(t, err)
}

func TestLoadTemplates_MissingFile(t *testing.T) {
	profiles, err := LoadTemplates(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestLoadTemplates_EmptyPath(t *testing.T) {
	_, err := LoadTemplates("")
	assert.Error(t, err)
}

func TestLoadTemplates_ExampleFile(t *testing.T) {
	profiles, err := LoadTemplates(filepath.Join("..", "templates.example.yaml"))
	require.NoError(t, err)

	names := make(map[string]shared.TemplateProfile)
	for _, p := range profiles {
		names[p.Name] = p
	}
	assert.Contains(t, names, "default")
	assert.True(t, names["ncaa"].HasVariants())
	assert.NotEmpty(t, names["nba"].Teams)
}

func TestLoadTemplates_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: x\n    default:\n      title: t\n"), 0o600))

	profiles, err := LoadTemplates(path)

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "t", profiles[0].Default.Title)
}

// endregion
