package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarrylabs/quarry-mcp/internal/platform/timeouts"
)

const (
	// DefaultHTTPHost is the loopback bind used unless overridden.
	DefaultHTTPHost = "127.0.0.1"
	// DefaultHTTPPort is the serving port used unless overridden.
	DefaultHTTPPort = 3000
)

// listenTCP is a test seam for injecting listener failures.
var listenTCP = net.Listen

// HTTPTransport serves MCP over streamable HTTP. Every request draws a
// fresh protocol server from the source, so no session state survives
// between requests.
type HTTPTransport struct {
	Host string
	Port int

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// Name implements Transport.
func (t *HTTPTransport) Name() string { return "http" }

// Serve listens on the configured host and port and serves the MCP
// endpoint until ctx is canceled or the listener fails.
func (t *HTTPTransport) Serve(ctx context.Context, source ServerSource) error {
	host := t.Host
	if host == "" {
		host = DefaultHTTPHost
	}
	port := t.Port
	if port == 0 {
		port = DefaultHTTPPort
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	listener, err := listenTCP("tcp", addr)
	if err != nil {
		return lifecycleError("failed to listen", err)
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return source()
	}, &mcp.StreamableHTTPOptions{Stateless: true})

	mux := http.NewServeMux()
	mux.Handle("/mcp", handler)
	mux.HandleFunc("/mcp/health", handleHealth)

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: timeouts.ReadHeader}
	t.mu.Lock()
	t.server = srv
	t.listener = listener
	t.mu.Unlock()

	log.Printf("Starting MCP HTTP server on %s", listener.Addr())

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.HTTPShutdown)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// Close implements Transport. Serve's own shutdown normally finishes the
// job; Close covers runs that never reached the serve loop.
func (t *HTTPTransport) Close(context.Context) error {
	t.mu.Lock()
	srv := t.server
	t.server = nil
	t.listener = nil
	t.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Close()
}

// Addr reports the bound address once Serve is listening. Useful when the
// configured port is 0.
func (t *HTTPTransport) Addr() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listener == nil {
		return ""
	}
	return t.listener.Addr().String()
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write health response: %v", err)
	}
}
