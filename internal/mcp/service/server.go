// Package service hosts the MCP serving core: the tool registry, the
// uniform call protocol around tool operations, transport bindings, and
// the run/stop lifecycle.
package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/platform/timeouts"
	"github.com/quarrylabs/quarry-mcp/internal/telemetry"
)

const (
	defaultServerName = "quarry-mcp"
	serverVersion     = "0.1.0"
)

// osExit is a test seam for the auto-exit path.
var osExit = os.Exit

// RegisteredResource pairs a resource definition with its read handler.
type RegisteredResource struct {
	Resource *mcp.Resource
	Handler  mcp.ResourceHandler
}

// ServerConfig carries everything one serving lifecycle needs.
type ServerConfig struct {
	// Name and Version identify the server to protocol clients. Both
	// default to the package constants when empty.
	Name    string
	Version string
	// Instructions is the optional usage hint advertised to clients.
	Instructions string
	Registry     *Registry
	Resources    []RegisteredResource
	Sink         telemetry.Sink
	// Transport defaults to stdio.
	Transport Transport
	// AuthMethod is reported to the sink, "token" or "none".
	AuthMethod string
	// ToolSets overrides the categories advertised to the sink. Empty
	// means all registry categories.
	ToolSets []string
	// AutoExit ends the process after a clean run teardown.
	AutoExit bool
}

// Server owns one MCP serving lifecycle. A Server is either running or
// not; Run and Stop move it between the two states, and at most one run
// is active at a time.
type Server struct {
	cfg  ServerConfig
	sink telemetry.Sink

	listOnce sync.Once

	mu  sync.Mutex
	run *runState
}

type runState struct {
	cancel   context.CancelFunc
	done     chan struct{}
	closeErr error
}

// NewServer prepares a server around the given catalogue and transport.
// Construction never fails; faults surface from Run.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Name == "" {
		cfg.Name = defaultServerName
	}
	if cfg.Version == "" {
		cfg.Version = serverVersion
	}
	if cfg.Transport == nil {
		cfg.Transport = &StdioTransport{}
	}
	sink := cfg.Sink
	if sink == nil {
		sink = telemetry.Noop{}
	}
	return &Server{cfg: cfg, sink: sink}
}

// Run serves the catalogue over the configured transport until the
// client disconnects, the context is canceled, the process receives an
// interrupt or terminate signal, or Stop is called. Every run, clean or
// failed, ends with signal delivery stopped, the sink flushed once, and
// the transport closed.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.run != nil {
		s.mu.Unlock()
		return lifecycleError("MCP server is already running", nil)
	}
	runCtx, cancel := context.WithCancel(ctx)
	state := &runState{cancel: cancel, done: make(chan struct{})}
	s.run = state
	s.mu.Unlock()
	defer cancel()

	signalCtx, stopSignals := signal.NotifyContext(runCtx, os.Interrupt, syscall.SIGTERM)

	s.announceSession()

	serveErr := s.cfg.Transport.Serve(signalCtx, s.newProtocolServer)

	stopSignals()
	s.flushSink()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), timeouts.TransportClose)
	closeErr := s.cfg.Transport.Close(closeCtx)
	closeCancel()

	err := serveErr
	if closeErr != nil {
		state.closeErr = lifecycleError("failed to close MCP transport", closeErr)
		if err != nil {
			err = fmt.Errorf("serve MCP: %v; close MCP transport: %w", serveErr, closeErr)
		} else {
			err = state.closeErr
		}
	}

	s.mu.Lock()
	s.run = nil
	s.mu.Unlock()
	close(state.done)

	if s.cfg.AutoExit && err == nil {
		osExit(0)
	}
	return err
}

// Stop ends an active run and waits for its teardown to finish. It is a
// no-op when the server is not running. The returned error is the
// transport close failure from the teardown, if any.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	state := s.run
	s.mu.Unlock()
	if state == nil {
		return nil
	}
	state.cancel()
	select {
	case <-state.done:
		return state.closeErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newProtocolServer builds a fresh protocol server carrying the full
// catalogue. The HTTP transport calls this once per request; stdio once
// per run.
func (s *Server) newProtocolServer() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: s.cfg.Name, Version: s.cfg.Version}, &mcp.ServerOptions{
		Instructions: s.cfg.Instructions,
	})
	srv.AddReceivingMiddleware(newDispatchMiddleware(s.cfg.Registry, s.sink, &s.listOnce))
	for _, tool := range s.cfg.Registry.Tools() {
		srv.AddTool(tool.Tool, tool.Handler)
	}
	for _, res := range s.cfg.Resources {
		srv.AddResource(res.Resource, res.Handler)
	}
	return srv
}

func (s *Server) announceSession() {
	defer func() { _ = recover() }()
	toolSets := s.cfg.ToolSets
	if len(toolSets) == 0 {
		toolSets = s.cfg.Registry.Categories()
	}
	s.sink.SessionStart(telemetry.SessionProps{
		Transport:  s.cfg.Transport.Name(),
		AuthMethod: s.cfg.AuthMethod,
		ToolCount:  s.cfg.Registry.Len(),
		ToolSets:   toolSets,
		Version:    s.cfg.Version,
	})
}

// flushSink awaits the session-end flush with a bounded grace period.
// Sink failures are logged, never surfaced.
func (s *Server) flushSink() {
	defer func() { _ = recover() }()
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.SinkFlush)
	defer cancel()
	if err := s.sink.Shutdown(ctx); err != nil {
		log.Printf("telemetry shutdown failed: %v", err)
	}
}
