// Package mcp exposes the aio SDK as MCP tools so agent hosts can publish and
// read telemetry without speaking the REST API directly.
package mcp

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/feedline/aio-go/aio"
	"github.com/feedline/aio-go/internal/config"
	"github.com/feedline/aio-go/mcp/handlers"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) error {
	if err := handler.RegisterTools(s); err != nil {
		log.Error().Err(err).Msgf("Failed to register %s tools", name)
		return err
	}
	return nil
}

// RunServer starts the MCP server over stdio. Credentials come from the AIO_*
// environment variables.
func RunServer() error {
	cfg := config.Load()
	cfg.Init()

	client, err := aio.NewFromEnv()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create aio client")
		return err
	}
	log.Info().Str("service_url", cfg.ServiceURL).Msg("aio client created")

	s := server.NewMCPServer(
		getEnvOrDefault("MCP_SERVER_NAME", "aio-mcp-server"),
		getEnvOrDefault("MCP_SERVER_VERSION", "0.1.0"),
		server.WithToolCapabilities(true),
	)

	for name, h := range map[string]toolRegisterer{
		"data":  handlers.NewDataHandler(client),
		"feed":  handlers.NewFeedHandler(client),
		"group": handlers.NewGroupHandler(client),
	} {
		if err := registerHandler(s, h, name); err != nil {
			return err
		}
	}

	log.Info().Msg("Starting aio MCP server (stdio transport)")
	return server.ServeStdio(s)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
