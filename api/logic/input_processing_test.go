/* input_processing_test.go
 * Contains unit tests for input_processing.go functions
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"matchpost-bot/api/shared"

	"github.com/stretchr/testify/assert"
)

var nbaRoster = []string{"New York Knicks", "Los Angeles Lakers", "Los Angeles Clippers", "Boston Celtics"}

// TestResolveTeamName_ExactMatch tests exact team name matching
func TestResolveTeamName_ExactMatch(t *testing.T) {
	assert.Equal(t, "Boston Celtics", ResolveTeamName("Boston Celtics", nbaRoster))
}

// TestResolveTeamName_CaseInsensitive tests case-insensitive matching
func TestResolveTeamName_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "New York Knicks", ResolveTeamName("NEW YORK knicks", nbaRoster))
}

// TestResolveTeamName_FuzzyMatching tests a partial team name
func TestResolveTeamName_FuzzyMatching(t *testing.T) {
	assert.Equal(t, "New York Knicks", ResolveTeamName("Knicks", nbaRoster))
	assert.Equal(t, "Los Angeles Lakers", ResolveTeamName("Lakers", nbaRoster))
}

// TestResolveTeamName_NoMatch tests that an unknown team is returned unchanged
func TestResolveTeamName_NoMatch(t *testing.T) {
	assert.Equal(t, "Real Madrid", ResolveTeamName("Real Madrid", nbaRoster))
}

// TestResolveTeamName_EmptyRoster tests that no roster means no change
func TestResolveTeamName_EmptyRoster(t *testing.T) {
	assert.Equal(t, "knicks", ResolveTeamName("knicks", nil))
}

// TestResolveTeams tests both sides of a match are resolved and other fields are kept
func TestResolveTeams(t *testing.T) {
	match := shared.MatchRecord{TeamA: "knicks", TeamB: "celtics", Date: "Jan 5", League: shared.LeagueMen}

	resolved := ResolveTeams(match, nbaRoster)

	assert.Equal(t, "New York Knicks", resolved.TeamA)
	assert.Equal(t, "Boston Celtics", resolved.TeamB)
	assert.Equal(t, "Jan 5", resolved.Date)
	assert.Equal(t, shared.LeagueMen, resolved.League)
}

// TestResolveTeamName_NotOnRoster tests that letters matching in order inside a roster name are not enough
func TestResolveTeamName_NotOnRoster(t *testing.T) {
	assert.Equal(t, "Nets", ResolveTeamName("Nets", nbaRoster))
	assert.Equal(t, "Nets", ResolveTeamName("Nets", []string{"New York Knicks", "Los Angeles Lakers", "Boston Celtics", "Golden State Warriors"}))
}

// TestResolveTeamName_MultiWordRun tests a run of whole words inside a roster name
func TestResolveTeamName_MultiWordRun(t *testing.T) {
	assert.Equal(t, "New York Knicks", ResolveTeamName("york knicks", nbaRoster))
	assert.Equal(t, "new knicks", ResolveTeamName("new knicks", nbaRoster))
}

// TestResolveTeamName_Ambiguous tests that input matching several roster names is left as entered
func TestResolveTeamName_Ambiguous(t *testing.T) {
	assert.Equal(t, "Los Angeles", ResolveTeamName("Los Angeles", nbaRoster))
}

// TestResolveTeams_SameCanonicalTeam tests both sides never end up as the same roster team
func TestResolveTeams_SameCanonicalTeam(t *testing.T) {
	resolved := ResolveTeams(shared.MatchRecord{TeamA: "Boston", TeamB: "Celtics"}, nbaRoster)
	assert.Equal(t, "Boston", resolved.TeamA)
	assert.Equal(t, "Celtics", resolved.TeamB)

	resolved = ResolveTeams(shared.MatchRecord{TeamA: "boston celtics", TeamB: "Celtics"}, nbaRoster)
	assert.Equal(t, "Boston Celtics", resolved.TeamA)
	assert.Equal(t, "Celtics", resolved.TeamB)
}

// TestResolveTeams_NotOnRoster tests an unknown team next to a known one
func TestResolveTeams_NotOnRoster(t *testing.T) {
	resolved := ResolveTeams(shared.MatchRecord{TeamA: "Nets", TeamB: "Celtics"}, nbaRoster)
	assert.Equal(t, "Nets", resolved.TeamA)
	assert.Equal(t, "Boston Celtics", resolved.TeamB)
}
