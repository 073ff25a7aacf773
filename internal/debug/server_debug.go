//go:build debug

package debug

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sufield/prdash/internal/bg"
)

const (
	maxRequestBodyBytes = 10 * 1024 // 10KB max for fault injection requests
)

// Server is the debug HTTP server
type Server struct {
	addr         string
	mux          *http.ServeMux
	introspector Introspector
}

// FaultRequest represents a fault injection request
type FaultRequest struct {
	FailNextSearchStatus  *int  `json:"fail_next_search_status,omitempty"`
	FailNextTokenExchange *bool `json:"fail_next_token_exchange,omitempty"`
}

// Start starts the debug HTTP server (debug build only) through runner.
// The server binds localhost only and must never be exposed externally.
//
// introspector may be nil, in which case /_debug/aggregator answers 501.
func Start(runner bg.Runner, introspector Introspector) {
	if !Active.LocalDebugServer {
		return
	}

	srv := newServer(Active.DebugServerAddr, introspector)

	runner.Do(func() {
		logger := GetLogger()
		logger.Debugf("DEBUG SERVER RUNNING ON %s", srv.addr)
		logger.Debug("WARNING: debug mode is enabled. DO NOT USE IN PRODUCTION!")

		httpServer := &http.Server{
			Addr:              srv.addr,
			Handler:           srv.mux,
			ReadHeaderTimeout: 2 * time.Second,
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Debugf("Debug server error: %v", err)
		}
	})
}

func newServer(addr string, introspector Introspector) *Server {
	srv := &Server{
		addr:         addr,
		mux:          http.NewServeMux(),
		introspector: introspector,
	}
	srv.registerHandlers()
	return srv
}

func (s *Server) registerHandlers() {
	s.mux.HandleFunc("/_debug/", s.handleIndex)
	s.mux.HandleFunc("/_debug/state", s.handleState)
	s.mux.HandleFunc("/_debug/faults", s.handleFaults)
	s.mux.HandleFunc("/_debug/faults/reset", s.handleFaultsReset)
	s.mux.HandleFunc("/_debug/config", s.handleConfig)
	s.mux.HandleFunc("/_debug/aggregator", s.handleAggregator)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/_debug/" {
		http.NotFound(w, r)
		return
	}

	const html = `<!DOCTYPE html>
<html>
<head><title>prdash debug</title></head>
<body>
<h1>prdash - Debug Interface</h1>
<p><strong>WARNING:</strong> This is a debug interface. Never use in production.</p>
<ul>
<li><a href="/_debug/state">/_debug/state</a> - debug switches and armed faults</li>
<li><a href="/_debug/aggregator">/_debug/aggregator</a> - aggregation run counters</li>
<li><a href="/_debug/faults">/_debug/faults</a> - view/modify fault injection (GET/POST)</li>
<li><a href="/_debug/faults/reset">/_debug/faults/reset</a> - reset all faults (POST)</li>
<li><a href="/_debug/config">/_debug/config</a> - debug configuration</li>
</ul>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"debug_enabled": Active.Enabled,
		"single_thread": Active.SingleThreaded,
		"faults":        Faults.Snapshot(),
	})
}

func (s *Server) handleFaults(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, Faults.Snapshot())
	case http.MethodPost:
		s.setFaults(w, r)
	default:
		methodNotAllowed(w)
	}
}

// setFaults applies fault injection configuration from a JSON request.
func (s *Server) setFaults(w http.ResponseWriter, r *http.Request) {
	logger := GetLogger()

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req FaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Debugf("Failed to decode fault request: %v", err)
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	if req.FailNextSearchStatus != nil {
		if err := Faults.SetFailNextSearchStatus(*req.FailNextSearchStatus); err != nil {
			http.Error(w, fmt.Sprintf("Invalid status: %v", err), http.StatusBadRequest)
			return
		}
		logger.Debugf("Fault set: fail_next_search_status=%d", *req.FailNextSearchStatus)
	}

	if req.FailNextTokenExchange != nil {
		Faults.SetFailNextTokenExchange(*req.FailNextTokenExchange)
		logger.Debugf("Fault set: fail_next_token_exchange=%v", *req.FailNextTokenExchange)
	}

	writeJSON(w, Faults.Snapshot())
}

func (s *Server) handleFaultsReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	Faults.Reset()
	GetLogger().Debug("All faults reset")

	writeJSON(w, map[string]string{"status": "reset"})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"enabled":            Active.Enabled,
		"single_threaded":    Active.SingleThreaded,
		"local_debug_server": Active.LocalDebugServer,
		"debug_server_addr":  Active.DebugServerAddr,
	})
}

// handleAggregator serves the introspector snapshot.
func (s *Server) handleAggregator(w http.ResponseWriter, r *http.Request) {
	if s.introspector == nil {
		http.Error(w, "Aggregator introspection not available (no introspector provided)", http.StatusNotImplemented)
		return
	}

	writeJSON(w, s.introspector.SnapshotData(r.Context()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}
