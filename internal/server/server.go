// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"mcp-diet-plan/internal/catalog"
	"mcp-diet-plan/internal/models"
	"mcp-diet-plan/internal/storage"
	"mcp-diet-plan/internal/wizard"
)

const (
	serverName    = "diet-plan"
	serverVersion = "1.0.0"
)

type Config struct {
	Host           string
	Port           int
	DBPath         string
	PlanDelay      time.Duration
	AllowedOrigins []string
}

type toolHandler func(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

// DietPlanServer exposes one wizard session to the rendering layer. Every
// tool call runs under mu, and so do deferred wizard transitions.
type DietPlanServer struct {
	httpServer *http.Server
	handler    http.Handler
	storage    *storage.SQLiteStorage
	catalog    *catalog.Catalog
	wizard     *wizard.Wizard
	observer   *observer
	tools      map[string]toolHandler
	logger     *zap.Logger
	config     *Config

	mu sync.Mutex
}

func NewDietPlanServer(cfg *Config, logger *zap.Logger) (*DietPlanServer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize database
	stor, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		stor.Close()
		return nil, fmt.Errorf("catalog is incomplete: %w", err)
	}

	s := &DietPlanServer{
		storage:  stor,
		catalog:  cat,
		observer: &observer{},
		logger:   logger,
		config:   cfg,
	}
	s.wizard = wizard.New(wizard.Options{
		Catalog:   cat,
		Store:     stor,
		Scheduler: wizard.LockedScheduler{Mu: &s.mu, Inner: wizard.TimerScheduler{}},
		Observer:  s.observer,
		PlanDelay: cfg.PlanDelay,
		Logger:    logger.Named("wizard"),
	})

	s.registerTools()

	router := mux.NewRouter()
	router.HandleFunc("/", s.handleHTTP).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	s.handler = c.Handler(s.loggingMiddleware(router))

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: s.handler,
	}

	return s, nil
}

// Handler returns the HTTP handler with routing, CORS and request logging.
func (s *DietPlanServer) Handler() http.Handler {
	return s.handler
}

func (s *DietPlanServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		s.logger.Debug("Request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapper.statusCode),
			zap.Duration("duration", time.Since(start)))
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *DietPlanServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"server": protocol.Implementation{Name: serverName, Version: serverVersion},
	})
}

func (s *DietPlanServer) handleHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Decode the MCP request
	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %v", err), nil)
		return
	}

	handler, ok := s.tools[request.Name]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Unknown tool: %s", request.Name), nil)
		return
	}

	s.mu.Lock()
	result, err := handler(r.Context(), &request)
	s.mu.Unlock()

	if err != nil {
		s.writeToolError(w, request.Name, err)
		return
	}

	// Send response
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

type errorBody struct {
	Error  string              `json:"error"`
	Fields []models.FieldError `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, fields []models.FieldError) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: msg, Fields: fields})
}

// writeToolError maps the engine's error taxonomy onto HTTP statuses.
func (s *DietPlanServer) writeToolError(w http.ResponseWriter, tool string, err error) {
	var verr *models.ValidationError
	var derr *models.DataIntegrityError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error(), verr.Fields)
	case errors.Is(err, models.ErrNoPlan):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.As(err, &derr):
		s.logger.Error("Catalog data integrity failure", zap.String("tool", tool), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	default:
		s.logger.Error("Tool failed", zap.String("tool", tool), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}

func (s *DietPlanServer) Start(ctx context.Context) error {
	s.logger.Info("Starting diet plan server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *DietPlanServer) Stop() error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(context.Background())
	}
	if s.storage != nil {
		if cerr := s.storage.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *DietPlanServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
