/* bulk_parser.go
 * Contains the parser for bulk match input. Bulk input is a block of text with an optional shared date line followed
 * by one match per line, e.g.
 *
 *   date = Jan 5
 *   ⏰7:00 PM | 👨 Men | Knicks @ Lakers
 *
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"matchpost-bot/api/shared"
)

const (
	clockMarker = "⏰"
	womenMarker = "👩"
	menMarker   = "👨"
)

var teamsPattern = regexp.MustCompile(`(.+?)\s*@\s*(.+)`)

var (
	ErrTooFewSegments = errors.New("match line needs at least two '|' separated segments")
	ErrMissingTeams   = errors.New("last segment is not in the form 'Team A @ Team B'")
)

// SkippedLine is a match line that was discarded while parsing
type SkippedLine struct {
	Line   string
	Reason error
}

// ParseBulkInput reads every match in a bulk input block.
// Preconditions: Receives the raw bulk text
// Postconditions: Returns the parsed matches in input order and the match lines that had to be skipped. Lines that are
// neither date lines nor match lines are ignored and not reported
func ParseBulkInput(bulkText string) ([]shared.MatchRecord, []SkippedLine) {
	var matches []shared.MatchRecord
	var skipped []SkippedLine
	currentDate := ""

	for _, line := range splitLines(bulkText) {
		if isDateLine(line) {
			currentDate = dateLineValue(line)
			continue
		}
		if !isMatchLine(line) {
			continue
		}

		match, err := parseMatchLine(line, currentDate)
		if err != nil {
			log.Printf("skipping bulk line %q: %v\n", line, err)
			skipped = append(skipped, SkippedLine{Line: line, Reason: err})
			continue
		}
		matches = append(matches, match)
	}
	return matches, skipped
}

// splitLines trims every line and drops the blank ones
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func isDateLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "date =") || strings.HasPrefix(lower, "date=")
}

// dateLineValue returns the text between the first and second '='
func dateLineValue(line string) string {
	parts := strings.Split(line, "=")
	return strings.TrimSpace(parts[1])
}

func isMatchLine(line string) bool {
	return strings.Contains(line, clockMarker) && strings.Contains(line, "|")
}

// parseMatchLine reads a single "⏰time | league | Team A @ Team B" line.
// Preconditions: Receives a match line and the date set by the most recent date line ("" if none)
// Postconditions: Returns the MatchRecord, or ErrTooFewSegments / ErrMissingTeams if the line can't be used
func parseMatchLine(line string, date string) (shared.MatchRecord, error) {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return shared.MatchRecord{}, ErrTooFewSegments
	}

	timeSource := strings.TrimSpace(strings.Replace(parts[0], clockMarker, "", 1))
	league := detectLeague(parts[1 : len(parts)-1])

	teamA, teamB, ok := parseTeams(parts[len(parts)-1])
	if !ok {
		return shared.MatchRecord{}, ErrMissingTeams
	}

	return shared.MatchRecord{
		TeamA:      teamA,
		TeamB:      teamB,
		Date:       date,
		TimeSource: timeSource,
		League:     league,
	}, nil
}

// detectLeague looks for a gender marker in the middle segments. Women is checked first since "women" contains "men"
func detectLeague(middle []string) shared.LeagueType {
	text := strings.ToLower(strings.Join(middle, " "))
	switch {
	case strings.Contains(text, womenMarker) || strings.Contains(text, "women"):
		return shared.LeagueWomen
	case strings.Contains(text, menMarker) || strings.Contains(text, "men"):
		return shared.LeagueMen
	}
	return shared.LeagueNone
}

func parseTeams(segment string) (string, string, bool) {
	m := teamsPattern.FindStringSubmatch(segment)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}
