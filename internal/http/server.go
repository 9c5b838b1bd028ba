package http

import (
	"context"
	"errors"
	"net/http"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

func loggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.InfoContext(
			r.Context(),
			"request",
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r)
	})
}

type Server struct {
	httpServer *http.Server
	logger     Logger
}

func newServer(mux *http.ServeMux, logger Logger, config Config) *Server {
	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}
}

// NewCustomerServer wires the customer-service routes.
func NewCustomerServer(customers CustomerWorkflow, logger Logger, config Config) *Server {
	handler := NewCustomerHandler(customers, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /customers", handler.CreateCustomer)
	mux.HandleFunc("GET /customers", handler.GetCustomer)
	mux.HandleFunc("GET /customers/all", handler.ListCustomers)
	mux.HandleFunc("GET /customers/search", handler.SearchCustomers)
	mux.HandleFunc("PUT /customers", handler.UpdateCustomer)
	mux.HandleFunc("DELETE /customers", handler.DeleteCustomer)

	return newServer(mux, logger, config)
}

// NewAccountServer wires the account-service routes.
func NewAccountServer(accounts AccountWorkflow, logger Logger, config Config) *Server {
	handler := NewAccountHandler(accounts, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /accounts", handler.CreateAccount)
	mux.HandleFunc("GET /accounts", handler.GetAccount)
	mux.HandleFunc("GET /accounts/search", handler.SearchAccounts)
	mux.HandleFunc("PUT /accounts", handler.UpdateAccount)
	mux.HandleFunc("DELETE /accounts", handler.DeleteAccount)

	return newServer(mux, logger, config)
}

// NewCardServer wires the card-service routes.
func NewCardServer(cards CardWorkflow, logger Logger, config Config) *Server {
	handler := NewCardHandler(cards, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /cards", handler.CreateCard)
	mux.HandleFunc("GET /cards", handler.GetCard)
	mux.HandleFunc("GET /cards/search", handler.SearchCards)
	mux.HandleFunc("PUT /cards", handler.UpdateCard)
	mux.HandleFunc("DELETE /cards", handler.DeleteCard)

	return newServer(mux, logger, config)
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
