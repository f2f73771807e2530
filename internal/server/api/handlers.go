// Package api serves a lemma store over HTTP. One clud process owns the
// backing file; concurrent writers are out of scope (last writer wins).
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lemmakit/clu/internal/clu/core"
	"github.com/lemmakit/clu/internal/clu/export"
	"github.com/lemmakit/clu/internal/clu/graph"
	"github.com/lemmakit/clu/internal/clu/search"
	"github.com/lemmakit/clu/internal/clu/store"
)

// Server handles HTTP requests over a store and its dependency graph.
type Server struct {
	store   *store.Store
	graph   *graph.Graph
	log     *zap.SugaredLogger
	version string
}

// New creates a server.
func New(s *store.Store, g *graph.Graph, log *zap.SugaredLogger, version string) *Server {
	return &Server{store: s, graph: g, log: log, version: version}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", s.handleVersion)
		r.Get("/graph", s.handleGraph)
		r.Get("/stats", s.handleStats)
		r.Get("/search", s.handleSearch)
		r.Get("/export", s.handleExport)

		r.Route("/lemmas", func(r chi.Router) {
			r.Get("/", s.handleList)
			r.Post("/", s.handleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGet)
				r.Patch("/", s.handleUpdate)
				r.Delete("/", s.handleDelete)
				r.Get("/chain", s.handleChain)
				r.Get("/dependents", s.handleDependents)
				r.Post("/dependencies", s.handleAddDependency)
				r.Delete("/dependencies/{dep}", s.handleRemoveDependency)
			})
		})
	})

	return r
}

// LemmaResponse is a lemma with its id inline.
type LemmaResponse struct {
	ID string `json:"id"`
	core.Lemma
}

// GraphResponse is the graph visualization payload.
type GraphResponse struct {
	Nodes []NodeResponse `json:"nodes"`
	Links []LinkResponse `json:"links"`
}

// NodeResponse is one lemma in the graph payload.
type NodeResponse struct {
	ID        string `json:"id"`
	Statement string `json:"statement"`
	Category  string `json:"category"`
}

// LinkResponse is one depends-on edge in the graph payload.
type LinkResponse struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type createRequest struct {
	Statement string   `json:"statement"`
	Proof     string   `json:"proof"`
	Tags      []string `json:"tags"`
	Category  string   `json:"category"`
	Notes     string   `json:"notes"`
}

type updateRequest struct {
	Statement *string   `json:"statement"`
	Proof     *string   `json:"proof"`
	Tags      *[]string `json:"tags"`
	Category  *string   `json:"category"`
	Notes     *string   `json:"notes"`
}

type dependencyRequest struct {
	DependsOn string `json:"depends_on"`
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": s.version,
		"format":  core.FormatVersion,
	})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	resp := GraphResponse{Nodes: []NodeResponse{}, Links: []LinkResponse{}}
	for _, l := range s.store.All() {
		resp.Nodes = append(resp.Nodes, NodeResponse{
			ID:        l.ID,
			Statement: l.Statement,
			Category:  l.Category,
		})
		for _, dep := range l.Dependencies {
			resp.Links = append(resp.Links, LinkResponse{Source: l.ID, Target: dep})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toResponses(s.store.All()))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Statement == "" {
		writeError(w, http.StatusBadRequest, "statement is required")
		return
	}

	id := s.store.Add(req.Statement, req.Proof, req.Tags, req.Category, req.Notes)
	s.log.Infow("lemma created", "id", id)

	l, _ := s.store.Get(id)
	writeJSON(w, http.StatusCreated, LemmaResponse{ID: id, Lemma: l})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	l, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "lemma not found")
		return
	}
	writeJSON(w, http.StatusOK, LemmaResponse{ID: id, Lemma: l})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := core.Patch{
		Statement: req.Statement,
		Proof:     req.Proof,
		Tags:      req.Tags,
		Category:  req.Category,
		Notes:     req.Notes,
	}
	if !s.store.Update(id, patch) {
		writeError(w, http.StatusNotFound, "lemma not found")
		return
	}
	s.log.Infow("lemma updated", "id", id)

	l, _ := s.store.Get(id)
	writeJSON(w, http.StatusOK, LemmaResponse{ID: id, Lemma: l})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, "lemma not found")
		return
	}
	s.log.Infow("lemma deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChain(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string][]string{"chain": s.graph.Chain(id)})
}

func (s *Server) handleDependents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, map[string][]string{"dependents": s.graph.Dependents(id)})
}

func (s *Server) handleAddDependency(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dependencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.graph.AddDependency(id, req.DependsOn) {
		writeError(w, http.StatusNotFound, "lemma or dependency not found")
		return
	}
	s.log.Infow("dependency added", "id", id, "depends_on", req.DependsOn)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemoveDependency(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dep := chi.URLParam(r, "dep")
	if !s.graph.RemoveDependency(id, dep) {
		writeError(w, http.StatusNotFound, "dependency not found")
		return
	}
	s.log.Infow("dependency removed", "id", id, "depends_on", dep)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := search.Query{
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if tags := r.URL.Query().Get("tags"); tags != "" {
		q.Tags = strings.Split(tags, ",")
	}
	if v := r.URL.Query().Get("has_proof"); v != "" {
		hasProof, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "has_proof must be a boolean")
			return
		}
		q.HasProof = &hasProof
	}
	if v := r.URL.Query().Get("regex"); v != "" {
		regex, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "regex must be a boolean")
			return
		}
		q.Regex = regex
	}

	writeJSON(w, http.StatusOK, toResponses(search.Filter(s.store.All(), q)))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Stats())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(export.JSON)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := export.RenderAll(s.store.All(), s.store.Metadata(), format)
	if err != nil {
		s.log.Errorw("export failed", "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	if format == export.JSON {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.Write([]byte(content))
}

func toResponses(lemmas []core.Lemma) []LemmaResponse {
	out := make([]LemmaResponse, 0, len(lemmas))
	for _, l := range lemmas {
		out = append(out, LemmaResponse{ID: l.ID, Lemma: l})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
