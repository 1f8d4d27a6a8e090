/* api.go
 * This file contains the public methods for interacting with this package. The front ends (bot, web) should only call
 * functions from this file, not the logic and store sub packages
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"matchpost-bot/api/logic"
	"matchpost-bot/api/shared"
	"matchpost-bot/api/store"
)

// API provides methods for generating match posts from the stored template profiles
type API struct {
	Store          store.Interface
	DefaultProfile string
}

// NewAPI creates a new API instance
// Preconditions: Receives a store and the name of the profile used when a command doesn't name one
// Postconditions: Returns the API, or an error if the store is nil or the default profile name is empty
func NewAPI(s store.Interface, defaultProfile string) (*API, error) {
	if s == nil || defaultProfile == "" {
		return nil, fmt.Errorf("store and defaultProfile are required")
	}
	return &API{
		Store:          s,
		DefaultProfile: defaultProfile,
	}, nil
}

// SeedProfiles stores each profile, replacing any stored profile with the same name
func (a *API) SeedProfiles(profiles []shared.TemplateProfile) error {
	for _, profile := range profiles {
		if err := a.Store.StoreTemplateProfile(profile); err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	return nil
}

// GetProfiles returns the names of all template profiles
func (a *API) GetProfiles() ([]string, error) {
	return a.Store.ListTemplateProfiles()
}

// ConvertTime converts an IST time to EST, returning the input unchanged if it can't be parsed
func (a *API) ConvertTime(istTime string) string {
	return logic.ConvertISTtoEST(strings.TrimSpace(istTime))
}

// BuildSingle generates the post for the single match form.
// Preconditions: Receives a profile name ("" for the default profile) and the source of the form fields
// Postconditions: Returns the generated post, or an error if the profile can't be loaded
func (a *API) BuildSingle(profileName string, fields shared.FieldSource) (shared.MatchPost, error) {
	profile, err := a.profile(profileName)
	if err != nil {
		return shared.MatchPost{}, err
	}

	match := shared.MatchRecord{
		TeamA:      fields.FieldValue(shared.FieldTeamA),
		TeamB:      fields.FieldValue(shared.FieldTeamB),
		Date:       fields.FieldValue(shared.FieldDate),
		TimeSource: fields.FieldValue(shared.FieldTime),
	}
	match = logic.ResolveTeams(match, profile.Teams)

	return buildPost(0, match, logic.DefaultTemplateSet(profile)), nil
}

// BuildBulk generates a post for every match in a bulk input block.
// Preconditions: Receives a profile name ("" for the default profile) and the raw bulk text
// Postconditions: Returns the posts and skipped lines, ErrEmptyBulkInput if the text is blank, ErrNoValidMatches if no
// line could be parsed, or an error if the profile can't be loaded
func (a *API) BuildBulk(profileName string, bulkText string) (BulkResult, error) {
	bulkText = strings.TrimSpace(bulkText)
	if bulkText == "" {
		return BulkResult{}, ErrEmptyBulkInput
	}

	matches, skipped := logic.ParseBulkInput(bulkText)
	if len(matches) == 0 {
		return BulkResult{Skipped: skipped}, ErrNoValidMatches
	}

	profile, err := a.profile(profileName)
	if err != nil {
		return BulkResult{}, err
	}
	selector := logic.SelectorFor(profile)

	posts := make([]shared.MatchPost, 0, len(matches))
	for i, match := range matches {
		match = logic.ResolveTeams(match, profile.Teams)
		posts = append(posts, buildPost(i, match, selector.Select(match.League)))
	}
	return BulkResult{Posts: posts, Skipped: skipped}, nil
}

// GenerateSingle runs the single match path and hands the post to the renderer
func (a *API) GenerateSingle(profileName string, fields shared.FieldSource, r shared.Renderer) error {
	post, err := a.BuildSingle(profileName, fields)
	if err != nil {
		return err
	}
	return r.RenderSingle(post)
}

// GenerateBulk runs the bulk path. Empty input and input without valid matches are reported through the renderer
// instead of being returned as errors
func (a *API) GenerateBulk(profileName string, bulkText string, r shared.Renderer) error {
	result, err := a.BuildBulk(profileName, bulkText)
	switch {
	case errors.Is(err, ErrEmptyBulkInput):
		return r.ReportEmptyBulkInput()
	case errors.Is(err, ErrNoValidMatches):
		return r.ReportNoMatches()
	case err != nil:
		return err
	}

	if len(result.Skipped) > 0 {
		log.Printf("bulk input: generated %d posts, skipped %d lines\n", len(result.Posts), len(result.Skipped))
	}
	return r.RenderBulk(result.Posts)
}

// CopyTags hands every tag of a post to the copier one at a time.
// Preconditions: Receives a copier and a generated post
// Postconditions: Returns the number of tags the copier failed to copy. Failures are logged and otherwise ignored
func CopyTags(c shared.Copier, post shared.MatchPost) int {
	failed := 0
	for _, tag := range post.Tags {
		if !c.CopyText(tag) {
			log.Printf("failed to copy tag %q\n", tag)
			failed++
		}
	}
	return failed
}

// profile loads a profile by name, using the default profile when the name is empty
func (a *API) profile(name string) (shared.TemplateProfile, error) {
	if name == "" {
		name = a.DefaultProfile
	}
	return a.Store.GetTemplateProfile(name)
}

func buildPost(index int, match shared.MatchRecord, set shared.TemplateSet) shared.MatchPost {
	time := logic.ConvertISTtoEST(match.TimeSource)
	title, description, tags := logic.RenderTemplateSet(set, match, time)
	return shared.MatchPost{
		Index:       index,
		Title:       title,
		Description: description,
		Tags:        tags,
		TeamA:       match.TeamA,
		TeamB:       match.TeamB,
		League:      match.League,
		Time:        time,
	}
}
