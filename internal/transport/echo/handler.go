// Package echo implements the artificial-delay HTTP endpoint used to
// produce load-test measurements: it validates a JSON payload, sleeps
// for a requested duration, and echoes what it received.
package echo

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxSleepSeconds caps the artificial delay.
const maxSleepSeconds = 60

// defaultSleepSeconds is applied when no sleep_time is given.
const defaultSleepSeconds = 0.03

// HealthResponse is the health check body.
type HealthResponse struct {
	Status string `json:"status"`
}

// ProcessResponse is the delay-echo body.
type ProcessResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	SleepTime   float64 `json:"sleep_time"`
	PayloadSize int     `json:"payload_size"`
}

// ErrorResponse carries a client-facing error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RootResponse describes the service.
type RootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Handler serves the delay-echo endpoints.
type Handler struct {
	version string
}

// NewHandler creates a new delay-echo handler.
func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// Register registers the handler's routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/api/process", h.handleProcess)
}

// handleRoot serves the service descriptor.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}

	writeJSON(w, http.StatusOK, RootResponse{
		Service: "delay-echo",
		Version: h.version,
		Endpoints: map[string]string{
			"GET /health":       "health check",
			"POST /api/process": "validate JSON payload and sleep for ?sleep_time seconds",
		},
	})
}

// handleHealth serves the health check.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleProcess validates the payload, sleeps, and echoes.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
		return
	}

	sleepTime := defaultSleepSeconds
	if s := r.URL.Query().Get("sleep_time"); s != "" {
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid sleep_time parameter"})
			return
		}
		sleepTime = parsed
	}

	if sleepTime < 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "sleep_time must be non-negative"})
		return
	}
	if sleepTime > maxSleepSeconds {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "sleep_time cannot exceed 60 seconds"})
		return
	}

	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Content-Type must be application/json"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON payload"})
		return
	}

	slog.Debug("processing request", "payload_bytes", len(body), "sleep_time", sleepTime)
	time.Sleep(time.Duration(sleepTime * float64(time.Second)))

	writeJSON(w, http.StatusOK, ProcessResponse{
		Status:      "success",
		Message:     "JSON validated and processed",
		SleepTime:   sleepTime,
		PayloadSize: len(body),
	})
}

// writeJSON writes a JSON response with status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write response", "error", err)
	}
}
