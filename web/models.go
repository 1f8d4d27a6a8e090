/* models.go
 * Contains the structs for the web server and the JSON request and response bodies
 * Authors: Zachary Bower
 */

package web

import (
	"strings"

	"matchpost-bot/api/api"
	"matchpost-bot/api/shared"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that serves the post generation endpoints
type Server struct {
	api *api.API
}

// GenerateRequest is the body of POST /api/generate. It doubles as the field source for the single match path
type GenerateRequest struct {
	Profile string `json:"profile"`
	TeamA   string `json:"teamA"`
	TeamB   string `json:"teamB"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// FieldValue implements shared.FieldSource
func (g GenerateRequest) FieldValue(name string) string {
	var value string
	switch name {
	case shared.FieldTeamA:
		value = g.TeamA
	case shared.FieldTeamB:
		value = g.TeamB
	case shared.FieldDate:
		value = g.Date
	case shared.FieldTime:
		value = g.Time
	}
	return strings.TrimSpace(value)
}

// BulkRequest is the body of POST /api/bulk
type BulkRequest struct {
	Profile string `json:"profile"`
	Text    string `json:"text"`
}

type PostsResponse struct {
	Posts []shared.MatchPost `json:"posts"`
}

type ConvertResponse struct {
	Input     string `json:"input"`
	Converted string `json:"converted"`
}

type ProfilesResponse struct {
	Profiles []string `json:"profiles"`
	Default  string   `json:"default"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
