// Copyright PrivacyAware Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the classification engine over HTTP.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gmcaixeta/PrivacyAware/internal/batch"
	"github.com/gmcaixeta/PrivacyAware/internal/engine"
	"github.com/gmcaixeta/PrivacyAware/internal/observability"
	"github.com/gmcaixeta/PrivacyAware/internal/version"
)

// maxRequestBody caps classify/batch request bodies at 10 MB.
const maxRequestBody = 10 << 20

// WebServer serves the classification API
type WebServer struct {
	port     string
	engine   *engine.Engine
	observer *observability.Observer
	server   *http.Server
}

// ClassifyRequest is the /classify request body
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ClassifyResponse wraps the engine result for /classify
type ClassifyResponse struct {
	Success bool                   `json:"success"`
	Result  *engine.DocumentResult `json:"result,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// NewWebServer creates a new web server instance
func NewWebServer(port string, eng *engine.Engine, obs *observability.Observer) *WebServer {
	return &WebServer{
		port:     port,
		engine:   eng,
		observer: obs,
	}
}

// Start starts the web server, trying nearby ports when the requested
// one is busy.
func (ws *WebServer) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/classify", ws.handleClassify)
	mux.HandleFunc("/batch", ws.handleBatch)
	mux.HandleFunc("/health", ws.handleHealth)
	mux.HandleFunc("/version", ws.handleVersion)

	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := ws.port
		if i > 0 {
			currentPort = fmt.Sprintf("%d", 8080+i)
		}

		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			continue
		}

		ws.server = &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 15 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		fmt.Printf("PrivacyAware API started on port %s\n", currentPort)
		if err := ws.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			lastError = err
			continue
		}
		return nil
	}

	return fmt.Errorf("could not find an available port in range 8080-8089: %w", lastError)
}

// Stop stops the web server
func (ws *WebServer) Stop() error {
	if ws.server != nil {
		return ws.server.Close()
	}
	return nil
}

func (ws *WebServer) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	complete := ws.observer.StartTiming("web", "classify", r.RemoteAddr)

	var req ClassifyRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		complete(false, nil)
		writeJSON(w, http.StatusBadRequest, ClassifyResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Text == "" {
		complete(false, nil)
		writeJSON(w, http.StatusBadRequest, ClassifyResponse{Error: "text is required"})
		return
	}

	result := ws.engine.ClassifyText(req.Text)
	complete(true, map[string]any{"intent": result.Intent})
	writeJSON(w, http.StatusOK, ClassifyResponse{Success: true, Result: &result})
}

// handleBatch accepts a CSV upload and streams back the augmented CSV.
// The text column defaults to "text" and is selectable with the
// text_column query parameter.
func (ws *WebServer) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	processor := batch.NewProcessor(ws.engine, ws.observer)
	opts := batch.Options{TextColumn: r.URL.Query().Get("text_column")}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="classified.csv"`)

	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := processor.Process(r.Context(), body, w, opts); err != nil {
		// Headers may already be out, but a bad input is usually
		// caught before the first row is written.
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	versionInfo := version.Full()
	healthData := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "privacyaware-api",
		"version":   versionInfo["version"],
	}
	writeJSON(w, http.StatusOK, healthData)
}

func (ws *WebServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, version.Full())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
