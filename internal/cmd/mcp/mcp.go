// Package mcp parses quarry-mcp configuration and runs the MCP server.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/quarrylabs/quarry-mcp/internal/mcp/domain"
	"github.com/quarrylabs/quarry-mcp/internal/mcp/service"
	"github.com/quarrylabs/quarry-mcp/internal/platform/config"
	"github.com/quarrylabs/quarry-mcp/internal/platform/otel"
	"github.com/quarrylabs/quarry-mcp/internal/platform/timeouts"
	"github.com/quarrylabs/quarry-mcp/internal/quarry"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

const (
	serviceName    = "quarry-mcp"
	serviceVersion = "0.1.0"
)

// serverInstructions is sent to MCP clients during initialization.
const serverInstructions = "This server exposes a Quarry workspace: projects, issues, components, " +
	"milestones, labels, comments, documents, calendar events, notifications " +
	"and time tracking. Issue keys look like QRY-42 and are accepted wherever " +
	"an issue id is expected. Listing tools take optional filters; update " +
	"tools change only the fields provided and keep the rest."

// Config holds quarry-mcp configuration.
type Config struct {
	APIURL            string   `env:"QUARRY_MCP_API_URL"            envDefault:"https://api.quarry.dev"`
	APIToken          string   `env:"QUARRY_MCP_API_TOKEN"`
	Transport         string   `env:"QUARRY_MCP_TRANSPORT"          envDefault:"stdio"`
	HTTPHost          string   `env:"QUARRY_MCP_HTTP_HOST"          envDefault:"127.0.0.1"`
	HTTPPort          int      `env:"QUARRY_MCP_HTTP_PORT"          envDefault:"3000"`
	AutoExit          bool     `env:"QUARRY_MCP_AUTO_EXIT"          envDefault:"true"`
	TelemetryDisabled bool     `env:"QUARRY_MCP_TELEMETRY_DISABLED" envDefault:"false"`
	ToolSets          []string `env:"QUARRY_MCP_TELEMETRY_TOOLSETS" envSeparator:","`
}

// ParseConfig resolves configuration from the environment, then lets
// flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Quarry API base URL")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPHost, "http-host", cfg.HTTPHost, "HTTP listen host (for HTTP transport)")
	fs.IntVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "HTTP listen port (for HTTP transport)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run wires the Quarry client, the tool catalog and the selected
// transport together, then serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, serviceName, serviceVersion)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.OTelShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	transport, err := newTransport(cfg)
	if err != nil {
		return err
	}

	client := quarry.NewClient(quarry.Config{
		BaseURL:   cfg.APIURL,
		Token:     cfg.APIToken,
		UserAgent: serviceName + "/" + serviceVersion,
	})
	sink := telemetry.New(cfg.TelemetryDisabled)
	registry, resources, err := domain.Catalog(client, sink)
	if err != nil {
		return err
	}

	authMethod := "none"
	if client.Authenticated() {
		authMethod = "token"
	}

	server := service.NewServer(service.ServerConfig{
		Name:         serviceName,
		Version:      serviceVersion,
		Instructions: serverInstructions,
		Registry:     registry,
		Resources:    resources,
		Sink:         sink,
		Transport:    transport,
		AuthMethod:   authMethod,
		ToolSets:     cfg.ToolSets,
		AutoExit:     cfg.AutoExit,
	})
	return server.Run(ctx)
}

func newTransport(cfg Config) (service.Transport, error) {
	switch cfg.Transport {
	case "stdio", "":
		return &service.StdioTransport{}, nil
	case "http":
		return &service.HTTPTransport{Host: cfg.HTTPHost, Port: cfg.HTTPPort}, nil
	default:
		return nil, fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}
