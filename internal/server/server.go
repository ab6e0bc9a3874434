// Package server implements the HTTP preview server for swatchbook.
//
// The server exposes the colormap catalog as JSON plus rendered swatch
// artifacts, sharing the render pipeline (and its cache) with the CLI:
//
//	GET /healthz                   liveness probe
//	GET /api/colormaps             collapsed alias groups as JSON
//	GET /colormaps/{name}.{ext}    single swatch (png, svg, or json)
//	GET /sheet.png?columns=N       full catalog sheet
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/swatchbook/pkg/errors"
	"github.com/matzehuels/swatchbook/pkg/pipeline"
)

// Server handles HTTP requests for the colormap catalog.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server around a pipeline runner. A nil logger uses the
// default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/api/colormaps", s.handleListColormaps)
	r.Get("/colormaps/{file}", s.handleSwatch)
	r.Get("/sheet.png", s.handleSheet)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for the request-scoped logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFrom retrieves the request-scoped logger from ctx, falling back to
// the server's base logger.
func (s *Server) loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return s.logger
}

// requestLogger tags each request with a UUID, attaches a request-scoped
// logger to the context, and logs method, path, and duration at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		logger := s.logger.With("request_id", id)
		r = r.WithContext(withLogger(r.Context(), logger))

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// colormapInfo is the JSON schema for one collapsed alias group.
type colormapInfo struct {
	Label    string `json:"label"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (s *Server) handleListColormaps(w http.ResponseWriter, r *http.Request) {
	labeled := s.runner.Registry().Labeled()

	out := make([]colormapInfo, len(labeled))
	for i, l := range labeled {
		out[i] = colormapInfo{
			Label:    l.Label,
			Name:     l.Name,
			Category: string(l.Value.Category),
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSwatch(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)
	format := strings.TrimPrefix(ext, ".")

	if err := errors.ValidateColormapName(name); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := pipeline.SwatchOptions{Format: format}
	var err error
	if opts.Width, err = intQuery(r, "width", 0); err != nil {
		s.writeError(w, r, err)
		return
	}
	if opts.Height, err = intQuery(r, "height", 0); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Swatch(r.Context(), name, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeArtifact(w, res)
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.SheetOptions{}
	var err error
	if opts.Columns, err = intQuery(r, "columns", 0); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Sheet(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeArtifact(w, res)
}

// contentTypes maps artifact formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) writeArtifact(w http.ResponseWriter, res *pipeline.Result) {
	if ct, ok := contentTypes[res.Format]; ok {
		w.Header().Set("Content-Type", ct)
	}
	if res.Cached {
		w.Header().Set("X-Cache", "hit")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("encode response: %v", err)
	}
}

// errorBody is the JSON schema for error responses.
type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// writeError maps structured error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch code := errors.GetCode(err); {
	case code == errors.ErrCodeColormapNotFound || code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case strings.HasPrefix(string(code), "INVALID_"):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.loggerFrom(r.Context()).Errorf("request failed: %v", err)
	}
	s.writeJSON(w, status, errorBody{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "query parameter %q must be an integer, got %q", key, raw)
	}
	return v, nil
}
