/* handlers.go
 * Contains the HTTP handlers for the post generation endpoints and jsonRenderer, the web implementation of the
 * Renderer interface
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"matchpost-bot/api/api"
	"matchpost-bot/api/shared"
	"matchpost-bot/api/store"
)

const maxBodyBytes = 1 << 20

// NewServer creates a Server for the given API
func NewServer(a *api.API) *Server {
	return &Server{api: a}
}

// Routes registers every endpoint on a new mux
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", s.GenerateHandler)
	mux.HandleFunc("/api/bulk", s.BulkHandler)
	mux.HandleFunc("/api/convert", s.ConvertHandler)
	mux.HandleFunc("/api/profiles", s.ProfilesHandler)
	return mux
}

// GenerateHandler HTTP endpoint that generates the post for a single match
// Preconditions: HTTP server has been started, receives a POST with a GenerateRequest body
// Postconditions: Writes a PostsResponse holding one post, 400 for a bad body, 404 for an unknown profile
func (s *Server) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	renderer := &jsonRenderer{w: w}
	if err := s.api.GenerateSingle(req.Profile, req, renderer); err != nil {
		renderer.fail(err)
	}
}

// BulkHandler HTTP endpoint that generates a post for every match in a bulk input block
// Preconditions: HTTP server has been started, receives a POST with a BulkRequest body
// Postconditions: Writes a PostsResponse, or 422 when the input is empty or holds no valid matches
func (s *Server) BulkHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req BulkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	renderer := &jsonRenderer{w: w}
	if err := s.api.GenerateBulk(req.Profile, req.Text, renderer); err != nil {
		renderer.fail(err)
	}
}

// ConvertHandler HTTP endpoint that converts the time query parameter from IST to EST
func (s *Server) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := r.URL.Query().Get("time")
	if input == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "time is required"})
		return
	}
	writeJSON(w, http.StatusOK, ConvertResponse{Input: input, Converted: s.api.ConvertTime(input)})
}

// ProfilesHandler HTTP endpoint that lists the template profiles
func (s *Server) ProfilesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	profiles, err := s.api.GetProfiles()
	if err != nil {
		writeAPIError(w, err)
		return
	}
	if profiles == nil {
		profiles = []string{}
	}
	writeJSON(w, http.StatusOK, ProfilesResponse{Profiles: profiles, Default: s.api.DefaultProfile})
}

// jsonRenderer writes the result of a generate call as the response body. The status line can only be written once,
// so once the renderer has started a response any later error is only logged
type jsonRenderer struct {
	w       http.ResponseWriter
	written bool
}

func (j *jsonRenderer) RenderSingle(post shared.MatchPost) error {
	return j.write(http.StatusOK, PostsResponse{Posts: []shared.MatchPost{post}})
}

func (j *jsonRenderer) RenderBulk(posts []shared.MatchPost) error {
	return j.write(http.StatusOK, PostsResponse{Posts: posts})
}

func (j *jsonRenderer) ReportNoMatches() error {
	return j.write(http.StatusUnprocessableEntity, ErrorResponse{Error: api.ErrNoValidMatches.Error()})
}

func (j *jsonRenderer) ReportEmptyBulkInput() error {
	return j.write(http.StatusUnprocessableEntity, ErrorResponse{Error: api.ErrEmptyBulkInput.Error()})
}

func (j *jsonRenderer) write(status int, v any) error {
	j.written = true
	return writeJSON(j.w, status, v)
}

// fail reports an error from a generate call. Errors raised after the response was started are only logged
func (j *jsonRenderer) fail(err error) {
	if j.written {
		log.Println("failed to write response:", err)
		return
	}
	writeAPIError(j.w, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		log.Println("failed to decode request:", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func writeAPIError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrProfileNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	log.Println(err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to generate post"})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
