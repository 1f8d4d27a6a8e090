/* models.go
 * This file contain the errors and structs that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import (
	"errors"

	"matchpost-bot/api/logic"
	"matchpost-bot/api/shared"
)

// Both of these mean "nothing to render" and are reported to the user, they are not internal faults
var (
	ErrEmptyBulkInput = errors.New("bulk input is empty")
	ErrNoValidMatches = errors.New("no valid matches found")
)

// BulkResult is the outcome of a bulk generation
type BulkResult struct {
	Posts   []shared.MatchPost
	Skipped []logic.SkippedLine
}
