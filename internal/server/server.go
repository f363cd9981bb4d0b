// Package server serves the portfolio as a plain website: rendered pages,
// fixed-path assets, custom 404/50x pages, and a /contact endpoint that
// relays form submissions through the form-relay client.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"folio/internal/relay"
	"folio/internal/site"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultAddr is the default listen address for serve mode.
const DefaultAddr = ":8080"

// Config carries everything the server needs. Site and Relay are required.
type Config struct {
	Addr      string
	AssetsDir string // On-disk directory for the resume PDF and images
	Site      *site.Site
	Relay     *relay.Client
	Logger    zerolog.Logger
}

// Server is the HTTP face of the portfolio.
type Server struct {
	site      *site.Site
	relay     *relay.Client
	assetsDir string
	log       zerolog.Logger
	tracer    oteltrace.Tracer
	tmpl      *template.Template
	http      *http.Server
}

// New creates a server from the config.
func New(cfg Config) (*Server, error) {
	if cfg.Site == nil {
		return nil, errors.New("server: site content is required")
	}
	if cfg.Relay == nil {
		return nil, errors.New("server: relay client is required")
	}
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		site:      cfg.Site,
		relay:     cfg.Relay,
		assetsDir: cfg.AssetsDir,
		log:       cfg.Logger.With().Str("component", "server").Logger(),
		tracer:    otel.Tracer("folio/server"),
		tmpl:      tmpl,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/pete-resume.html", s.handleResume)
	// Shipped as a fixed path so a fronting proxy can use it for error_page.
	mux.HandleFunc("/50x.html", func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "50x.html.tmpl", http.StatusOK)
	})
	mux.HandleFunc("/contact", s.handleContact)
	mux.HandleFunc("/"+s.site.Assets.ResumePDF, s.handleAsset(s.site.Assets.ResumePDF))
	mux.HandleFunc("/"+s.site.Assets.Avatar, s.handleAsset(s.site.Assets.Avatar))
	// JPEG fallback for the picture element on the home page.
	mux.HandleFunc("/profile.jpg", s.handleAsset("profile.jpg"))
	return s.logRequests(mux)
}

// ListenAndServe blocks until the context is canceled or the listener fails,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("serving portfolio")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

type pageData struct {
	Site *site.Site
}

// handleIndex serves the home page; anything else under "/" is a 404.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.notFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.renderPage(w, "index.html.tmpl", http.StatusOK)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.renderPage(w, "resume.html.tmpl", http.StatusOK)
}

// handleAsset serves a fixed-path file from the assets directory. A missing
// file renders the 404 page rather than the stock http.NotFound text.
func (s *Server) handleAsset(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.assetsDir == "" {
			s.notFound(w, r)
			return
		}
		path := filepath.Join(s.assetsDir, filepath.Base(name))
		if _, err := os.Stat(path); err != nil {
			s.notFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// contactResponse is the JSON body for POST /contact.
type contactResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// handleContact validates the posted fields and relays them. Validation
// failures are the caller's problem (422); relay failures surface as the
// 50x-style generic error with a 502.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx, span := s.tracer.Start(r.Context(), "contact.submit")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, contactResponse{Message: "malformed form body"})
		return
	}
	sub := relay.Submission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	err := s.relay.Submit(ctx, sub)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, contactResponse{OK: true, Message: relay.SuccessMessage})
	case errors.Is(err, relay.ErrInvalid):
		span.SetAttributes(attribute.Bool("contact.invalid", true))
		s.writeJSON(w, http.StatusUnprocessableEntity, contactResponse{Message: err.Error()})
	default:
		// Network failure and upstream rejection collapse into the one
		// generic failure message, same as the interactive form.
		span.RecordError(err)
		s.log.Warn().Err(err).Msg("contact relay failed")
		s.writeJSON(w, http.StatusBadGateway, contactResponse{Message: relay.FailureMessage})
	}
}

func (s *Server) renderPage(w http.ResponseWriter, name string, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, pageData{Site: s.site}); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "404.html.tmpl", http.StatusNotFound)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body contactResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("encode response failed")
	}
}

// logRequests is the access-log middleware.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
