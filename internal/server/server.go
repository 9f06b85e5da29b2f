// Package server exposes the payout optimizer over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rgehrsitz/payoutopt/internal/calculation"
	"github.com/rgehrsitz/payoutopt/internal/config"
	"github.com/rgehrsitz/payoutopt/internal/output"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Options tunes the HTTP server.
type Options struct {
	ReadTimeout  time.Duration
	MaxBodyBytes int
}

// Server routes API requests to the calculation engine.
type Server struct {
	engine  *calculation.CalculationEngine
	logger  *zap.Logger
	metrics *Metrics
	opts    Options
}

// New creates a server. A nil logger discards log output.
func New(engine *calculation.CalculationEngine, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, logger: logger, metrics: NewMetrics(), opts: opts}
}

// Handler returns the request router.
func (s *Server) Handler() fasthttp.RequestHandler {
	metrics := s.metrics.Handler()
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		switch {
		case path == "/v1/calculations":
			s.requirePost(ctx, s.handleCalculation)
		case path == "/v1/validations":
			s.requirePost(ctx, s.handleValidation)
		case path == "/healthz" && ctx.IsGet():
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		case path == "/metrics" && ctx.IsGet():
			metrics(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "Not found")
		}
	}
}

func (s *Server) requirePost(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set("Allow", fasthttp.MethodPost)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if limit := s.opts.MaxBodyBytes; limit > 0 && len(ctx.PostBody()) > limit {
		writeError(ctx, fasthttp.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	next(ctx)
}

// handleCalculation accepts an envelope or a bare profile. The optional
// "format" query parameter selects a report formatter instead of JSON.
func (s *Server) handleCalculation(ctx *fasthttp.RequestCtx) {
	started := time.Now()
	meta := CalculationMetadata{
		CalculationID:        uuid.New().String(),
		CalculationStartedAt: started.UTC().Format(time.RFC3339),
	}
	log := s.logger.With(zap.String("calculation_id", meta.CalculationID))

	finish := func(outcome, code string) {
		completed := time.Now()
		meta.CalculationCompletedAt = completed.UTC().Format(time.RFC3339)
		meta.CalculationDurationMs = completed.Sub(started).Milliseconds()
		meta.CalculationOutcome = outcome
		s.metrics.observe(outcome, code, completed.Sub(started).Seconds())
	}

	var formatter output.Formatter
	if name := string(ctx.QueryArgs().Peek("format")); name != "" && name != "json" {
		if formatter = output.GetFormatterByName(name); formatter == nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Unknown format: "+name)
			return
		}
	}

	profile, err := config.Import(ctx.PostBody())
	if err != nil {
		finish(OutcomeFailure, "")
		log.Info("rejected calculation", zap.Error(err))
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := config.ValidateProfile(profile); err != nil {
		finish(OutcomeFailure, "")
		var verr *config.ValidationError
		issues := []string{err.Error()}
		if errors.As(err, &verr) {
			issues = verr.Issues
		}
		log.Info("profile failed validation", zap.Strings("issues", issues))
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, CalculationResponse{CalculationMetadata: meta, Issues: issues})
		return
	}

	result, err := s.engine.Calculate(ctx, profile)
	if err != nil {
		finish(OutcomeFailure, "")
		log.Error("calculation failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	finish(OutcomeSuccess, result.Best.Strategy.Code)
	log.Info("calculation completed",
		zap.String("recommended", result.Best.Strategy.Code),
		zap.Int64("duration_ms", meta.CalculationDurationMs))

	if formatter != nil {
		body, err := formatter.Format(output.BuildReport(result))
		if err != nil {
			writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
			return
		}
		ctx.SetContentType(contentType(formatter.Name()))
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBody(body)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, CalculationResponse{CalculationMetadata: meta, Result: result})
}

func (s *Server) handleValidation(ctx *fasthttp.RequestCtx) {
	profile, err := config.Import(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	issues := config.Issues(profile)
	if issues == nil {
		issues = []string{}
	}
	writeJSON(ctx, fasthttp.StatusOK, ValidationResponse{Valid: len(issues) == 0, Issues: issues})
}

func contentType(format string) string {
	switch {
	case format == "html":
		return "text/html; charset=utf-8"
	case strings.HasSuffix(format, "csv"):
		return "text/csv; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"status":500,"message":"encoding failed"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "payoutopt",
		ReadTimeout:        s.opts.ReadTimeout,
		MaxRequestBodySize: s.opts.MaxBodyBytes,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			return err
		}
		return <-errc
	}
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
	return s.Serve(ctx, ln)
}
