package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/raysh454/aria/internal/analyzer"
	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/logging"
	"github.com/raysh454/aria/internal/suggest"
	"github.com/raysh454/aria/internal/utils"
)

// Server is the HTTP + WebSocket API surface for the accessibility analyzer.
type Server struct {
	cfg       Config
	analyzer  interfaces.Analyzer
	suggester interfaces.Suggester
	router    chi.Router
	upgrader  websocket.Upgrader
	logger    interfaces.Logger

	jobsMu     sync.Mutex
	jobs       map[string]*Job
	jobCancels map[string]context.CancelFunc
}

// NewServer creates a Server, building the default analyzer and suggestion
// gateway unless the config injects replacements.
func NewServer(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("server")
	}

	az := cfg.Analyzer
	if az == nil {
		var err error
		az, err = analyzer.NewDefaultAnalyzer(cfg.AnalyzerConfig, nil, logger)
		if err != nil {
			return nil, fmt.Errorf("creating analyzer: %w", err)
		}
	}

	sg := cfg.Suggester
	if sg == nil {
		var err error
		sg, err = suggest.NewGateway(cfg.SuggestConfig, logger)
		if err != nil {
			return nil, fmt.Errorf("creating suggestion gateway: %w", err)
		}
	}

	s := &Server{
		cfg:       cfg,
		analyzer:  az,
		suggester: sg,
		router:    chi.NewRouter(),
		logger:    logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
		jobs:       make(map[string]*Job),
		jobCancels: make(map[string]context.CancelFunc),
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/analyses", s.optionsHandler("GET, POST"))
	r.Options("/analyses/{jobID}", s.optionsHandler("GET, DELETE"))
	r.Options("/ws/analyses", s.optionsHandler("GET"))

	// Analyses
	r.Post("/analyses", s.handleStartAnalysis)
	r.Get("/analyses", s.handleListAnalyses)
	r.Get("/analyses/{jobID}", s.handleGetAnalysis)
	r.Delete("/analyses/{jobID}", s.handleCancelAnalysis)

	// WebSocket for job progress
	r.Get("/ws/analyses", s.handleAnalysisWS)

	r.Get("/healthz", s.handleHealth)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []interfaces.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, interfaces.Field{Key: "query", Value: q})
	}

	if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			fields = append(fields, interfaces.Field{Key: "body", Value: string(bodyBytes)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close cancels outstanding jobs and shuts down the analyzer and the
// suggestion gateway.
func (s *Server) Close() {
	s.jobsMu.Lock()
	cancels := make([]context.CancelFunc, 0, len(s.jobCancels))
	for _, cancel := range s.jobCancels {
		cancels = append(cancels, cancel)
	}
	s.jobsMu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}

	if s.analyzer != nil {
		if err := s.analyzer.Close(); err != nil {
			s.logger.Warn("closing analyzer", interfaces.Field{Key: "error", Value: err.Error()})
		}
	}
	if s.suggester != nil {
		if err := s.suggester.Close(); err != nil {
			s.logger.Warn("closing suggestion gateway", interfaces.Field{Key: "error", Value: err.Error()})
		}
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- HTTP handlers ---

// handleStartAnalysis starts a page analysis job.
//
//	@Summary	Start a page accessibility analysis
//	@Accept		json
//	@Produce	json
//	@Param		request	body		StartAnalysisRequest	true	"analysis target"
//	@Success	202		{object}	Job
//	@Failure	400		{object}	ErrorResponse
//	@Router		/analyses [post]
func (s *Server) handleStartAnalysis(w http.ResponseWriter, r *http.Request) {
	var body StartAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("decoding start analysis body", interfaces.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	target, err := utils.NormalizeTarget(body.URL)
	if err != nil {
		s.logger.Warn("normalizing target url",
			interfaces.Field{Key: "url", Value: body.URL},
			interfaces.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Jobs outlive the request, so the job context is detached from it.
	job := s.startAnalysisJob(context.Background(), target, body.Suggest)
	s.logger.Info("started analysis job",
		interfaces.Field{Key: "job_id", Value: job.ID},
		interfaces.Field{Key: "url", Value: target})
	writeJSON(w, http.StatusAccepted, job)
}

// handleListAnalyses lists all analysis jobs.
//
//	@Summary	List analysis jobs
//	@Produce	json
//	@Success	200	{array}	Job
//	@Router		/analyses [get]
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	jobs := s.ListJobs()
	s.logger.Info("listed analysis jobs", interfaces.Field{Key: "count", Value: len(jobs)})
	writeJSON(w, http.StatusOK, jobs)
}

// handleGetAnalysis returns one analysis job, including its report when done.
//
//	@Summary	Get an analysis job
//	@Produce	json
//	@Param		jobID	path		string	true	"job id"
//	@Success	200		{object}	Job
//	@Failure	404		{object}	ErrorResponse
//	@Router		/analyses/{jobID} [get]
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.GetJob(jobID)
	if job == nil {
		s.logger.Warn("getting analysis job: not found", interfaces.Field{Key: "job_id", Value: jobID})
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleCancelAnalysis cancels a running analysis job.
//
//	@Summary	Cancel an analysis job
//	@Param		jobID	path	string	true	"job id"
//	@Success	204
//	@Router		/analyses/{jobID} [delete]
func (s *Server) handleCancelAnalysis(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	s.CancelJob(jobID)
	s.logger.Info("canceled analysis job", interfaces.Field{Key: "job_id", Value: jobID})
	writeJSON(w, http.StatusNoContent, nil)
}

// handleHealth reports liveness.
//
//	@Summary	Health check
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/healthz [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleAnalysisWS starts an analysis and streams its job events over a
// websocket. Query parameters: url (required), suggest (optional bool).
func (s *Server) handleAnalysisWS(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "missing url query parameter")
		return
	}
	withSuggestions := false
	if v := r.URL.Query().Get("suggest"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			withSuggestions = b
		}
	}

	target, err := utils.NormalizeTarget(rawURL)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", interfaces.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	job := s.startAnalysisJob(r.Context(), target, withSuggestions)
	s.logger.Info("started analysis job over websocket",
		interfaces.Field{Key: "job_id", Value: job.ID},
		interfaces.Field{Key: "url", Value: target})
	_ = conn.WriteJSON(job)

	for ev := range job.Events {
		if err := conn.WriteJSON(ev); err != nil {
			// Assume client disconnected; cancel job
			s.CancelJob(job.ID)
			return
		}
	}

	// Final job state, including the report
	if final := s.GetJob(job.ID); final != nil {
		_ = conn.WriteJSON(final)
	}
}
