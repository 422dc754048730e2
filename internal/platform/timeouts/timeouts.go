// Package timeouts defines shared timeout constants used across the
// server. Centralizing these values keeps the teardown bounds consistent
// between layers and makes the durations discoverable.
package timeouts

import "time"

// APIRequest caps the wait time for a single Quarry API request.
const APIRequest = 30 * time.Second

// ReadHeader limits how long the HTTP transport waits for request headers.
const ReadHeader = 5 * time.Second

// HTTPShutdown limits how long the HTTP transport waits for in-flight
// requests during graceful shutdown.
const HTTPShutdown = 10 * time.Second

// TransportClose caps transport teardown at the end of a serving run.
const TransportClose = 10 * time.Second

// SinkFlush caps the telemetry flush at the end of a serving run.
const SinkFlush = 5 * time.Second

// OTelShutdown caps the trace exporter flush during process shutdown.
const OTelShutdown = 5 * time.Second
