// cmd/mcp-server/main.go: standalone HTTP MCP server for polymature
//
// Exposes the maturation engine as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//
//	go run ./cmd/mcp-server -port 8080 -catalog functions.yaml -log-level debug
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/njchilds90/polymature"
	"github.com/njchilds90/polymature/catalog"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	catalogPath := flag.String("catalog", "", "YAML function catalog (defaults to the built-in one)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	maxDegree := flag.Int("max-degree", polymature.DefaultMaxDegree, "Largest polynomial degree a tool call may build (0 = no limit)")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid log level")
	}
	logger = logger.Level(level)

	cat := catalog.Default()
	if *catalogPath != "" {
		cat, err = catalog.Load(*catalogPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *catalogPath).Msg("failed to load catalog")
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           newMux(cat, *maxDegree, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info().Str("addr", srv.Addr).Strs("functions", cat.Names()).Msg("polymature MCP server listening")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Send()
	}
}

func newMux(cat *catalog.Catalog, maxDegree int, logger zerolog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// POST /tool: handle a tool call
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.With().Str("request", ulid.Make().String()).Logger()

		defer func() {
			if rec := recover(); rec != nil {
				reqLogger.Error().Interface("panic", rec).Str("stack", string(debug.Stack())).Msg("panic in /tool")
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req polymature.ToolRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, reqLogger, err.Error())
			return
		}
		// no trailing junk
		if dec.More() {
			writeError(w, reqLogger, "invalid JSON: trailing data")
			return
		}

		start := time.Now()
		engine := polymature.NewEngine(
			polymature.WithCatalog(cat),
			polymature.WithMaxDegree(maxDegree),
			polymature.WithLogger(reqLogger),
		)
		resp := engine.HandleToolCall(req)

		event := reqLogger.Info()
		if resp.Error != "" {
			event = reqLogger.Warn().Str("error", resp.Error)
		}
		event.Str("tool", req.Tool).Dur("took", time.Since(start)).Msg("tool call")

		body, err := json.Marshal(resp)
		if err != nil {
			reqLogger.Error().Err(err).Str("tool", req.Tool).Msg("failed to encode tool response")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "failed to encode response: " + err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(append(body, '\n'))
	})

	// GET /schema: tool schema for agent registration
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, polymature.MCPToolSpec())
	})

	// GET /health: liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return mux
}

func writeError(w http.ResponseWriter, logger zerolog.Logger, msg string) {
	logger.Debug().Str("error", msg).Msg("bad request")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
