// Package server exposes the GraphQL schema over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-club-setup/internal/apperr"
	"github.com/goliatone/go-club-setup/internal/events"
	"github.com/goliatone/go-club-setup/internal/logging"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// Pinger reports database reachability for the health check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Request is the GraphQL over HTTP payload.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type Server struct {
	app    router.Server[*fiber.App]
	schema graphql.Schema
	db     Pinger
	logger logging.Logger
	name   string
	init   sync.Once
}

type Option func(*Server)

func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDatabase enables the database probe of /health.
func WithDatabase(db Pinger) Option {
	return func(s *Server) {
		s.db = db
	}
}

func WithAppName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.name = name
		}
	}
}

func New(schema graphql.Schema, opts ...Option) *Server {
	s := &Server{
		schema: schema,
		logger: logging.Nop(),
		name:   "club-setup",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = router.NewFiberAdapter(func(*fiber.App) *fiber.App {
		return fiber.New(fiber.Config{
			AppName:      s.name,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			BodyLimit:    20 * 1024 * 1024,
		})
	})
	s.app.WrappedRouter().Use(recover.New())
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.app.Router()
	r.Post("/graphql", s.graphQL).SetName("graphql.post")
	r.Get("/graphql", s.graphQL).SetName("graphql.get")
	r.Get("/health", s.health).SetName("health")

	s.app.WrappedRouter().Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	s.init.Do(s.app.Init)
	return s.app.WrappedRouter()
}

// Serve blocks until the listener fails or Shutdown is called.
func (s *Server) Serve(addr string) error {
	s.init.Do(s.app.Init)
	s.logger.Info("listening on %s", addr)
	return s.app.Serve(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// requestContext attaches request and correlation IDs and a request logger.
func (s *Server) requestContext(c router.Context) context.Context {
	requestID := strings.TrimSpace(c.Header(HeaderRequestID))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.SetHeader(HeaderRequestID, requestID)

	ctx := logging.ContextWithRequestID(c.Context(), requestID)
	ctx = logging.ContextWithCorrelationID(ctx, c.Header(HeaderCorrelationID))
	return logging.ContextWithLogger(ctx, logging.FromContext(ctx, s.logger))
}

func (s *Server) graphQL(c router.Context) error {
	ctx := s.requestContext(c)

	req, err := s.decodeRequest(c)
	if err != nil {
		return s.writeError(ctx, c, err)
	}
	if strings.TrimSpace(req.Query) == "" {
		return s.writeError(ctx, c, apperr.Validation("Must provide query string"))
	}

	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	status := "success"
	if result.HasErrors() {
		status = "error"
	}
	events.RecordGraphQLOperation(s.operationLabel(req), status)
	return c.JSON(http.StatusOK, result)
}

func (s *Server) decodeRequest(c router.Context) (Request, error) {
	var req Request
	if c.Method() == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return req, apperr.Validation("Variables are invalid JSON")
			}
		}
		return req, nil
	}
	if len(c.Body()) == 0 {
		return req, apperr.Validation("Must provide query string")
	}
	if err := c.Bind(&req); err != nil {
		return req, apperr.Validation("POST body sent invalid JSON")
	}
	return req, nil
}

func (s *Server) health(c router.Context) error {
	ctx := s.requestContext(c)
	body := map[string]string{"status": "ok", "db": "skipped"}
	if s.db == nil {
		return c.JSON(http.StatusOK, body)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		logging.FromContext(ctx, s.logger).Error("database ping failed: %v", err)
		body["status"] = "degraded"
		body["db"] = "down"
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	body["db"] = "up"
	return c.JSON(http.StatusOK, body)
}

// writeError renders transport level failures as a go-errors response.
func (s *Server) writeError(ctx context.Context, c router.Context, err error) error {
	mapped := apperr.ToGoError(ctx, err)
	events.RecordGraphQLOperation("invalid", "error")
	logging.FromContext(ctx, s.logger).Warn("rejected graphql request: %v", err)
	return c.JSON(mapped.Code, mapped.ToErrorResponse(false, mapped.StackTrace))
}

// operationLabel names the metric series after the first root field of the
// executed operation. Names the schema does not define collapse to "other".
func (s *Server) operationLabel(req Request) string {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return "invalid"
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok || op.SelectionSet == nil {
			continue
		}
		if req.OperationName != "" && (op.Name == nil || op.Name.Value != req.OperationName) {
			continue
		}
		root := s.schema.QueryType()
		if op.Operation == ast.OperationTypeMutation {
			root = s.schema.MutationType()
		}
		for _, sel := range op.SelectionSet.Selections {
			field, ok := sel.(*ast.Field)
			if !ok || field.Name == nil || root == nil {
				continue
			}
			if _, known := root.Fields()[field.Name.Value]; known {
				return field.Name.Value
			}
			return "other"
		}
	}
	return "other"
}
