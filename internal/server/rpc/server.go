// Package rpc exposes the account lifecycle operations as named remote calls
// over a JSON HTTP surface. The adapter is deliberately thin: it decodes and
// validates the payload, invokes the service, and maps errors onto the
// stable wire shapes.
package rpc

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/microfarm/accounts/internal/logging"
	"github.com/microfarm/accounts/internal/server/models"
	"github.com/microfarm/accounts/internal/server/services"
)

// AccountService is the slice of the lifecycle orchestrator the RPC surface
// depends on.
type AccountService interface {
	Create(ctx context.Context, params services.CreateAccountParams) (string, error)
	RequestToken(ctx context.Context, email string) (string, error)
	VerifyAccount(ctx context.Context, email, otp string) (*models.AccountView, error)
	VerifyCredentials(ctx context.Context, email, password string) (*models.AccountView, error)
	Get(ctx context.Context, email string) (*models.AccountView, error)
}

const requestIDKey = "request_id"

type Server struct {
	address  string
	accounts AccountService
	logger   logging.Logger
	app      *fiber.App
}

func NewServer(address string, logger logging.Logger, accounts AccountService) *Server {
	s := &Server{
		address:  address,
		accounts: accounts,
		logger:   logger.With("module", "rpc_server"),
	}

	app := fiber.New()
	app.Use(s.requestID)

	app.Post("/rpc/createAccount", s.handleCreateAccount)
	app.Post("/rpc/requestAccountToken", s.handleRequestAccountToken)
	app.Post("/rpc/verifyAccount", s.handleVerifyAccount)
	app.Post("/rpc/verifyCredentials", s.handleVerifyCredentials)
	app.Post("/rpc/getAccount", s.handleGetAccount)

	s.app = app
	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping RPC server...")
		_ = s.app.Shutdown()
	}()

	s.logger.Info(ctx, "Starting RPC server", "address", s.address)

	return s.app.Listen(s.address, fiber.ListenConfig{DisableStartupMessage: true})
}

// requestID tags every call with an id so concurrent requests can be told
// apart in the logs.
func (s *Server) requestID(c fiber.Ctx) error {
	c.Locals(requestIDKey, uuid.NewString())
	return c.Next()
}

// log returns the per-request logger.
func (s *Server) log(c fiber.Ctx) logging.Logger {
	return s.logger.With(requestIDKey, c.Locals(requestIDKey))
}
