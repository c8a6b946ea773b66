package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"redline/internal/config"
	"redline/internal/logging"
	"redline/internal/pretty"
	"redline/internal/sections"
	"redline/internal/wordfreq"
)

// Server exposes the comparison transforms over JSON HTTP.
type Server struct {
	cfg       config.Config
	log       *zap.Logger
	parser    sections.Parser
	formatter *pretty.Formatter
	diffOpts  []wordfreq.Option
}

// New builds a server from cfg. A nil log discards request logging.
func New(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	opts := []wordfreq.Option{wordfreq.WithTokenMode(cfg.TokenMode())}
	if cfg.Tokens.Fold {
		opts = append(opts, wordfreq.WithFold())
	}
	return &Server{
		cfg:       cfg,
		log:       log,
		parser:    sections.NewParser(cfg.Sections.Delimiter),
		formatter: pretty.NewFormatter(cfg.Render.Placeholder),
		diffOpts:  opts,
	}
}

type diffRequest struct {
	Old       string `json:"old"`
	New       string `json:"new"`
	Highlight bool   `json:"highlight"`
}

type diffResponse struct {
	wordfreq.Result
	OldSpans []wordfreq.Span `json:"oldSpans,omitempty"`
	NewSpans []wordfreq.Span `json:"newSpans,omitempty"`
}

type sectionsRequest struct {
	Markdown string `json:"markdown"`
}

type sectionsResponse struct {
	sections.Comparison
	Dropped []sections.Dropped `json:"dropped,omitempty"`
}

type renderRequest struct {
	Text  string          `json:"text"`
	Value json.RawMessage `json:"value"`
}

type renderResponse struct {
	HTML string `json:"html"`
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/diff", s.auth(s.post(s.handleDiff)))
	mux.HandleFunc("/v1/sections", s.auth(s.post(s.handleSections)))
	mux.HandleFunc("/v1/render", s.auth(s.post(s.handleRender)))
	return s.logRequests(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := strings.TrimSpace(s.cfg.Server.Token)
		if tok == "" {
			next(w, r)
			return
		}
		got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), []byte(tok)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) post(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if !s.decode(w, r, &req) {
		return
	}
	res := diffResponse{Result: wordfreq.Diff(req.Old, req.New, s.diffOpts...)}
	if req.Highlight {
		res.OldSpans = wordfreq.Highlight(req.Old, res.Removals, s.diffOpts...)
		res.NewSpans = wordfreq.Highlight(req.New, res.Additions, s.diffOpts...)
	}
	s.reply(w, res)
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	var req sectionsRequest
	if !s.decode(w, r, &req) {
		return
	}
	c, dropped := s.parser.ParseReport(req.Markdown)
	for _, d := range dropped {
		s.log.Debug("dropped report line",
			zap.String("section", d.Section),
			zap.String("reason", d.Reason),
			zap.String("line", d.Line))
	}
	s.reply(w, sectionsResponse{Comparison: c, Dropped: dropped})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Value) == 0 || string(req.Value) == "null" {
		s.reply(w, renderResponse{HTML: s.formatter.HTML(req.Text)})
		return
	}
	v, err := pretty.DecodeValue(req.Value)
	if err != nil {
		http.Error(w, "bad value", http.StatusBadRequest)
		return
	}
	s.reply(w, renderResponse{HTML: s.formatter.TreeHTML(pretty.Tree(v))})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) reply(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}
