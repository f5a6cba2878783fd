//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mocks
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bedandhome/pedidos/internal/order"
	"github.com/bedandhome/pedidos/internal/repository"
)

// sessionHeader carries the login token that authorizes order intake.
const sessionHeader = "X-Session-Token"

type Repository interface {
	Create(draft repository.Draft, salesPerson string) order.Order
	UpdateFields(id string, draft repository.Draft)
	UpdateStatus(id string, status order.Status)
	Get(id string) (order.Order, bool)
	History(id string) ([]order.HistoryEntry, bool)
	List(f repository.Filter) []order.Order
}

type Sessions interface {
	Login(salesPerson, secret string) (string, error)
	SalesPerson(token string) (string, bool)
	Consume(token string)
}

type Server struct {
	repo     Repository
	sessions Sessions
	logger   *zap.Logger
	audit    *AuditManager
	server   *http.Server
}

func New(repo Repository, sessions Sessions, logger *zap.Logger, audit *AuditManager) *Server {
	return &Server{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
		audit:    audit,
	}
}

// Run starts the audit pipeline and serves HTTP until the listener is shut
// down. Signal handling and shutdown sequencing live in the caller.
func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.audit.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.audit.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.loggingMiddleware)
	r.Use(s.auditMiddleware)

	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost).Name("handleLogin")

	r.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost).Name("handleCreateOrder")
	r.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet).Name("handleListOrders")
	r.HandleFunc("/orders/export", s.handleExportCSV).Methods(http.MethodGet).Name("handleExportCSV")
	r.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet).Name("handleGetOrder")
	r.HandleFunc("/orders/{id}", s.handleUpdateOrder).Methods(http.MethodPut).Name("handleUpdateOrder")
	r.HandleFunc("/orders/{id}/status", s.handleUpdateStatus).Methods(http.MethodPut).Name("handleUpdateStatus")
	r.HandleFunc("/orders/{id}/history", s.handleOrderHistory).Methods(http.MethodGet).Name("handleOrderHistory")

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newResponseRecorder(w)

		next.ServeHTTP(rec, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr))
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
