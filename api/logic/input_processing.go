/* input_processing.go
 * Contains the logic for matching user entered team names against a profile's roster of canonical team names
 * Authors: Zachary Bower
 */

package logic

import (
	"log"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"matchpost-bot/api/shared"
)

// ResolveTeamName finds the canonical spelling of a team name.
// Preconditions: receives the team name as entered and a list of canonical team names (may be empty)
// Postconditions: returns the matching canonical name, or the input unchanged if the roster is empty, nothing matches
// or more than one roster entry matches. A roster entry only matches when the input is the whole entry or a run of
// whole words inside it, e.g. "Knicks" matches "New York Knicks" but "Nets" doesn't match "Boston Celtics"
func ResolveTeamName(team string, roster []string) string {
	if len(roster) == 0 || team == "" {
		return team
	}

	// Match on lowercase names and map back to the original spelling
	lookup := make(map[string]string)
	var rosterLower []string
	for _, name := range roster {
		lower := strings.ToLower(name)
		lookup[lower] = name
		rosterLower = append(rosterLower, lower)
	}

	lowerTeam := strings.ToLower(team)
	fuzzyResults := fuzzy.RankFind(lowerTeam, rosterLower)
	if len(fuzzyResults) == 0 {
		return team
	}

	// If there are multiple matches, check to see if theres an exact match with the input
	for i := range fuzzyResults {
		if fuzzyResults[i].Target == lowerTeam {
			return lookup[lowerTeam]
		}
	}

	// RankFind matches any subsequence of letters, so only keep the results where the input is made of whole words
	var candidates []string
	for _, result := range fuzzyResults {
		if containsWordRun(result.Target, lowerTeam) {
			candidates = append(candidates, result.Target)
		}
	}

	switch len(candidates) {
	case 0:
		return team
	case 1:
		return lookup[candidates[0]]
	}
	log.Printf("team name %q matches more than one roster entry, leaving it as entered\n", team)
	return team
}

// containsWordRun reports whether the words of input appear consecutively in the words of name
func containsWordRun(name string, input string) bool {
	nameWords := strings.Fields(name)
	inputWords := strings.Fields(input)
	if len(inputWords) == 0 {
		return false
	}
	for i := 0; i+len(inputWords) <= len(nameWords); i++ {
		if slices.Equal(nameWords[i:i+len(inputWords)], inputWords) {
			return true
		}
	}
	return false
}

// ResolveTeams canonicalises both team names of a match against the roster. If both sides resolve to the same team
// only a side that was entered as the exact roster name keeps the canonical name, the other is left as entered
func ResolveTeams(match shared.MatchRecord, roster []string) shared.MatchRecord {
	teamA := ResolveTeamName(match.TeamA, roster)
	teamB := ResolveTeamName(match.TeamB, roster)

	if teamA == teamB && !strings.EqualFold(match.TeamA, match.TeamB) {
		if !strings.EqualFold(match.TeamA, teamA) {
			teamA = match.TeamA
		}
		if !strings.EqualFold(match.TeamB, teamB) {
			teamB = match.TeamB
		}
	}

	match.TeamA = teamA
	match.TeamB = teamB
	return match
}
