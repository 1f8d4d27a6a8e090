/* models.go
 * This file contain the interfaces, structs and helper functions that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

import "fmt"

// LeagueType is the optional classification attached to a bulk parsed match
type LeagueType string

const (
	LeagueNone  LeagueType = ""
	LeagueMen   LeagueType = "men"
	LeagueWomen LeagueType = "women"
)

// Badge returns the label shown next to a match header, or an empty string when no league is set
func (l LeagueType) Badge() string {
	switch l {
	case LeagueWomen:
		return "👩 WOMEN"
	case LeagueMen:
		return "👨 MEN"
	}
	return ""
}

// TimeOfDay is a parsed clock value. Meridiem is "AM", "PM" or empty for 24-hour input
type TimeOfDay struct {
	Hour     int
	Minute   int
	Meridiem string
}

// MatchRecord is a single match read from the form fields or a bulk input line
type MatchRecord struct {
	TeamA      string
	TeamB      string
	Date       string
	TimeSource string
	League     LeagueType
}

// TemplateSet holds the templates used to build one post
type TemplateSet struct {
	Title       string   `yaml:"title" bson:"title"`
	Description string   `yaml:"description" bson:"description"`
	Tags        []string `yaml:"tags" bson:"tags"`
}

// TemplateProfile is a named template configuration. Men and Women are only used when both are set
type TemplateProfile struct {
	Name    string       `yaml:"name" bson:"name"`
	Default *TemplateSet `yaml:"default,omitempty" bson:"default,omitempty"`
	Men     *TemplateSet `yaml:"men,omitempty" bson:"men,omitempty"`
	Women   *TemplateSet `yaml:"women,omitempty" bson:"women,omitempty"`
	Teams   []string     `yaml:"teams,omitempty" bson:"teams,omitempty"` // canonical team names, optional
}

// HasVariants reports whether both league variants are configured
func (p TemplateProfile) HasVariants() bool {
	return p.Men != nil && p.Women != nil
}

// MatchPost is the generated content for a single match
type MatchPost struct {
	Index       int        `json:"index"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	TeamA       string     `json:"teamA"`
	TeamB       string     `json:"teamB"`
	League      LeagueType `json:"leagueType,omitempty"`
	Time        string     `json:"time"`
}

// Header returns the "Match N: A vs B" heading used in bulk output
func (p MatchPost) Header() string {
	header := fmt.Sprintf("Match %d: %s vs %s", p.Index+1, p.TeamA, p.TeamB)
	if badge := p.League.Badge(); badge != "" {
		header += " [" + badge + "]"
	}
	return header
}
