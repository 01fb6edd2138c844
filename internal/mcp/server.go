package mcp

import (
	"context"
	"log/slog"

	"github.com/mfeldt/etude-mcp/internal/domain/plan"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// PlanOpener hands out the plan store for a profile, loading persisted state
// on first use.
type PlanOpener interface {
	Open(ctx context.Context, profile string) *plan.Store
}

// Config contains server configuration.
type Config struct {
	Plans         PlanOpener
	Resolver      ProfileResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "etude",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Add middleware (profile injection)
	// Stdio mode: always disable auth (local, single user)
	if cfg.TransportMode == "stdio" {
		server.AddReceivingMiddleware(noAuthMiddleware("default"))
	} else {
		// HTTP mode: auth based on config
		if cfg.AuthEnabled {
			server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
		} else {
			server.AddReceivingMiddleware(noAuthMiddleware("default"))
		}
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	// Register all tools and prompts
	registerTools(server, cfg.Plans)
	registerPrompts(server, cfg.Plans)

	return server
}
