package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/service"
)

const (
	appName    = "IMDb Dataset Downloader"
	appVersion = "1.0.0"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes attaches all routes to the provided mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleHealth)
	mux.HandleFunc("GET /datasets", h.handleListDatasets)
	mux.HandleFunc("POST /download", h.handleDownload)
	mux.HandleFunc("POST /extract", h.handleExtract)
	mux.HandleFunc("GET /files", h.handleListFiles)
	mux.HandleFunc("DELETE /files", h.handleDeleteFiles)
	mux.HandleFunc("POST /full-process", h.handleFullProcess)
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type datasetListResponse struct {
	Datasets   []string `json:"datasets"`
	TotalCount int      `json:"total_count"`
}

// handleHealth returns basic API information for liveness checks.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Message:   appName + " API",
		Version:   appVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// handleListDatasets lists the configured dataset filenames.
func (h *Handler) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets := h.svc.Datasets()
	writeJSON(w, http.StatusOK, datasetListResponse{
		Datasets:   datasets,
		TotalCount: len(datasets),
	})
}

// handleDownload downloads all datasets into the storage backend.
func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Download(r.Context())
	if err != nil {
		serverError(w, r, "download", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleExtract decompresses all downloaded datasets.
func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Extract(r.Context())
	if err != nil {
		serverError(w, r, "extract", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleListFiles lists all stored artifacts.
func (h *Handler) handleListFiles(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListFiles(r.Context())
	if err != nil {
		serverError(w, r, "list files", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleDeleteFiles deletes all stored artifacts.
func (h *Handler) handleDeleteFiles(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		serverError(w, r, "delete files", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleFullProcess runs download followed by extraction.
func (h *Handler) handleFullProcess(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.FullProcess(r.Context())
	if err != nil {
		serverError(w, r, "full process", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	slog.ErrorContext(r.Context(), "endpoint error", "operation", op, "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
