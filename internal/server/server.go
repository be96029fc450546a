// Package server exposes the calculation engine over HTTP. Routing,
// CORS, request parsing and the report download are all plumbing around
// the engine's single entry point.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sattva-energy/geotabs/internal/engine"
	"github.com/sattva-energy/geotabs/internal/model"
)

// Server holds the HTTP handlers for the calculation API.
type Server struct {
	engine *engine.Engine
}

// New creates a Server around the given engine.
func New(eng *engine.Engine) *Server {
	return &Server{engine: eng}
}

// Router builds the chi router with CORS for the given origins.
func (s *Server) Router(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/calculate", s.handleCalculate)
		r.Post("/report", s.handleReport)
	})

	return r
}

// calcRequest is the body of both POST endpoints.
type calcRequest struct {
	ProjectName string       `json:"projectName"`
	Inputs      model.Inputs `json:"inputs"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.run(w, r, req.Inputs)
	if err != nil {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.run(w, r, req.Inputs)
	if err != nil {
		return
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		zap.L().Error("marshal report", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	project := req.ProjectName
	if project == "" {
		project = "report"
	}
	filename := sanitizeFilename(project) + "_report.json"

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pretty)
}

// run executes the pipeline and writes the error response itself, so
// both POST handlers share one error contract: ValidationError is a
// client error with its message, anything else is an opaque 500.
func (s *Server) run(w http.ResponseWriter, r *http.Request, in model.Inputs) (*model.Result, error) {
	result, err := s.engine.Run(in)
	if err == nil {
		return result, nil
	}

	if engine.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
	} else {
		zap.L().Error("calculation failed",
			zap.String("request_id", requestID(r)),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
	return nil, err
}

// sanitizeFilename keeps the attachment name header-safe: anything
// outside [A-Za-z0-9._ -] becomes an underscore.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-' || r == ' ':
			return r
		default:
			return '_'
		}
	}, name)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
