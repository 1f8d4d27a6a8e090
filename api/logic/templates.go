/* templates.go
 * Contains the placeholder substitution used to build titles, descriptions and tags from user supplied templates
 * Authors: Zachary Bower
 */

package logic

import (
	"strings"

	"matchpost-bot/api/shared"
)

const (
	placeholderTeamA        = "{Team A}"
	placeholderTeamB        = "{Team B}"
	placeholderDate         = "{Date}"
	placeholderTime         = "{Time}"
	placeholderTeamAHashtag = "#{Team A}"
	placeholderTeamBHashtag = "#{Team B}"
)

// GenerateContent replaces every placeholder in a template with the match values.
// Preconditions: Receives the template and the team, date and (already converted) time strings
// Postconditions: Returns the template with all known placeholders replaced. Unknown placeholders are left as is
func GenerateContent(template string, teamA string, teamB string, date string, time string) string {
	result := template

	// Hashtag placeholders go first, otherwise "{Team A}" would match inside "#{Team A}"
	result = strings.ReplaceAll(result, placeholderTeamAHashtag, "#"+Hashtag(teamA))
	result = strings.ReplaceAll(result, placeholderTeamBHashtag, "#"+Hashtag(teamB))

	result = strings.ReplaceAll(result, placeholderTeamA, teamA)
	result = strings.ReplaceAll(result, placeholderTeamB, teamB)
	result = strings.ReplaceAll(result, placeholderDate, date)
	result = strings.ReplaceAll(result, placeholderTime, time)

	return result
}

// Hashtag joins all words of a team name, e.g. "Real   Madrid" -> "RealMadrid"
func Hashtag(team string) string {
	return strings.Join(strings.Fields(team), "")
}

// RenderTemplateSet applies GenerateContent to the title, description and each tag of a template set
func RenderTemplateSet(set shared.TemplateSet, match shared.MatchRecord, time string) (string, string, []string) {
	title := GenerateContent(set.Title, match.TeamA, match.TeamB, match.Date, time)
	description := GenerateContent(set.Description, match.TeamA, match.TeamB, match.Date, time)

	tags := make([]string, 0, len(set.Tags))
	for _, tag := range set.Tags {
		tags = append(tags, GenerateContent(tag, match.TeamA, match.TeamB, match.Date, time))
	}
	return title, description, tags
}
