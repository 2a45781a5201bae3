// Package http provides the HTTP API for document conversion and for
// browsing stored conversions.
package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fwojciec/docparse"
)

// ShutdownTimeout is the time allowed for in-flight requests to finish
// when the server closes.
const ShutdownTimeout = 5 * time.Second

// Server wires the conversion pipeline and conversion storage to HTTP
// endpoints.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address for the server, e.g. ":8080".
	Addr string

	Parser      docparse.Parser
	Extractor   docparse.Extractor
	Markdown    docparse.MarkdownConverter
	Conversions docparse.ConversionService
}

// NewServer creates a new Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/convert", s.handleConvert)
	s.router.Route("/conversions", func(r chi.Router) {
		r.Get("/", s.handleConversionList)
		r.Get("/{id}", s.handleConversionByID)
		r.Delete("/{id}", s.handleConversionDelete)
	})

	s.server.Handler = s.router

	return s
}

// Open begins listening on Addr and serves requests until Close.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL the server is listening on. Useful in tests
// where the server binds to an ephemeral port.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP dispatches the request to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// convertRequest is the request body for POST /convert. Exactly one of
// Text or HTML should be set.
type convertRequest struct {
	Text       string `json:"text"`
	HTML       string `json:"html"`
	SourceType string `json:"source_type"`
	Language   string `json:"language"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, docparse.Errorf(docparse.EINVALID, "invalid request body"))
		return
	}

	text := req.Text
	sourceType := req.SourceType

	if req.HTML != "" {
		extracted, err := s.Extractor.Extract(req.HTML)
		if err != nil {
			writeError(w, err)
			return
		}
		text, err = s.Markdown.Convert(extracted.ContentHTML)
		if err != nil {
			writeError(w, err)
			return
		}
		if sourceType == "" {
			sourceType = "html"
		}
	}
	if sourceType == "" {
		sourceType = "text"
	}

	doc, err := s.Parser.Parse(text, docparse.ParseOptions{
		SourceType: sourceType,
		Language:   req.Language,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleConversionList(w http.ResponseWriter, r *http.Request) {
	filter := docparse.ConversionFilter{Limit: 50}
	if v := r.URL.Query().Get("source_path"); v != "" {
		filter.SourcePath = &v
	}

	convs, err := s.Conversions.FindConversions(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"conversions": convs,
		"count":       len(convs),
	})
}

func (s *Server) handleConversionByID(w http.ResponseWriter, r *http.Request) {
	conv, err := s.Conversions.FindConversionByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

func (s *Server) handleConversionDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Conversions.DeleteConversion(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := docparse.ErrorCode(err)
	writeJSON(w, statusFromCode(code), map[string]string{
		"error": docparse.ErrorMessage(err),
	})
}

func statusFromCode(code string) int {
	switch code {
	case docparse.EINVALID:
		return http.StatusBadRequest
	case docparse.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
