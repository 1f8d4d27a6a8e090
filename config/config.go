/* config.go
 * Contains the configuration loaded from the environment (and .env file) at startup
 * Authors: Zachary Bower
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Discord   DiscordConfig
	Mongo     MongoConfig
	Templates TemplatesConfig
	Web       WebConfig
}

type DiscordConfig struct {
	ProdToken string
	BetaToken string
	// Messages per second the bot may send to a single channel
	MessageRate float64
}

type MongoConfig struct {
	URI    string
	DBName string
}

type TemplatesConfig struct {
	Path           string
	DefaultProfile string
}

type WebConfig struct {
	Enabled bool
	Addr    string
}

// Load reads the .env file if there is one, then builds the config from the environment
// Preconditions: None
// Postconditions: Returns the config. A missing .env file is not an error, a malformed one is
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return LoadFromEnv(), nil
}

// LoadFromEnv builds the config from environment variables, applying defaults for unset values
func LoadFromEnv() *Config {
	return &Config{
		Discord: DiscordConfig{
			ProdToken:   os.Getenv("DISCORD_PROD_TOKEN"),
			BetaToken:   os.Getenv("DISCORD_BETA_TOKEN"),
			MessageRate: getEnvFloat("DISCORD_MESSAGE_RATE", 1),
		},
		Mongo: MongoConfig{
			URI:    os.Getenv("MONGO_PROD_URI"),
			DBName: getEnv("MONGO_DB_NAME", "matchpost"),
		},
		Templates: TemplatesConfig{
			Path:           getEnv("TEMPLATES_PATH", "templates.yaml"),
			DefaultProfile: getEnv("DEFAULT_PROFILE", "default"),
		},
		Web: WebConfig{
			Enabled: getEnvBool("WEB_ENABLED", false),
			Addr:    getEnv("WEB_ADDR", ":8080"),
		},
	}
}

// Validate checks the config has what the bot needs to start
func (c *Config) Validate(test bool) error {
	if c.DiscordToken(test) == "" {
		if test {
			return fmt.Errorf("DISCORD_BETA_TOKEN is required when running the test bot")
		}
		return fmt.Errorf("DISCORD_PROD_TOKEN is required")
	}
	if c.Templates.DefaultProfile == "" {
		return fmt.Errorf("DEFAULT_PROFILE cannot be empty")
	}
	if c.Discord.MessageRate <= 0 {
		return fmt.Errorf("DISCORD_MESSAGE_RATE must be greater than 0")
	}
	return nil
}

// DiscordToken returns the beta bot token when running the test bot, else the production token
func (c *Config) DiscordToken(test bool) string {
	if test {
		return c.Discord.BetaToken
	}
	return c.Discord.ProdToken
}

// UseMongo reports whether template profiles should be stored in mongo rather than in memory
func (c *Config) UseMongo() bool {
	return c.Mongo.URI != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := strings.ToLower(os.Getenv(key)); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
