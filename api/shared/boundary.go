/* boundary.go
 * Contains the interfaces the front ends (discord bot, web server) implement so that the api package never talks to
 * a UI directly
 * Authors: Zachary Bower
 */

package shared

import "strings"

// Field names read from a FieldSource for the single match path
const (
	FieldTeamA = "teamA"
	FieldTeamB = "teamB"
	FieldDate  = "date"
	FieldTime  = "time"
)

// FieldSource returns the trimmed current value of a named input field
type FieldSource interface {
	FieldValue(name string) string
}

// FieldMap is a FieldSource backed by a plain map
type FieldMap map[string]string

// FieldValue implements FieldSource. Missing fields are returned as an empty string
func (f FieldMap) FieldValue(name string) string {
	return strings.TrimSpace(f[name])
}

// Renderer receives the final generated posts, or one of the "nothing to render" notifications
type Renderer interface {
	RenderSingle(post MatchPost) error
	RenderBulk(posts []MatchPost) error
	ReportNoMatches() error
	ReportEmptyBulkInput() error
}

// Copier hands an exact string to the user for copying. The result is only used for feedback
type Copier interface {
	CopyText(value string) bool
}
