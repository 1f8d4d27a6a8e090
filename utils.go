/* utils.go
 * Utility functions used by main.go to parse flags and wire the store, templates and API together
 * Authors: Zachary Bower
 */

package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"matchpost-bot/api/api"
	"matchpost-bot/api/store"
	"matchpost-bot/config"
)

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// openStore connects to MongoDB when a URI is configured, otherwise profiles are kept in memory
func openStore(cfg *config.Config) (store.Interface, error) {
	if cfg.UseMongo() {
		s, err := store.NewStore(cfg.Mongo.DBName, cfg.Mongo.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		log.Printf("Using mongo database %s\n", s.GetDatabase().Name())
		return s, nil
	}

	log.Println("MONGO_PROD_URI not set, template profiles are kept in memory")
	s, err := store.NewMemoryStore()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// setupAPI opens the store, seeds it with the profiles from the templates file and creates the API
// Preconditions: Receives a validated config
// Postconditions: Returns the API and the store it uses so the caller can disconnect it, or an error
func setupAPI(cfg *config.Config) (*api.API, store.Interface, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	a, err := api.NewAPI(s, cfg.Templates.DefaultProfile)
	if err != nil {
		return nil, nil, err
	}

	profiles, err := config.LoadTemplates(cfg.Templates.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := a.SeedProfiles(profiles); err != nil {
		return nil, nil, err
	}
	log.Printf("Loaded %d template profiles from %s\n", len(profiles), cfg.Templates.Path)

	names, err := a.GetProfiles()
	if err != nil {
		return nil, nil, err
	}
	if !slices.Contains(names, cfg.Templates.DefaultProfile) {
		log.Printf("warning: default profile '%s' is not defined, commands must name a profile\n", cfg.Templates.DefaultProfile)
	}
	return a, s, nil
}
