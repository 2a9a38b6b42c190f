package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/registry"
	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/storage"
)

// ErrNothingDownloaded aborts a full process run before extraction.
var ErrNothingDownloaded = errors.New("no files were downloaded successfully")

// ErrNothingExtracted marks a full process run whose extraction phase
// produced nothing.
var ErrNothingExtracted = errors.New("no files were extracted successfully")

// ItemFailure records one dataset's failure within a batch.
type ItemFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// DownloadResult summarizes one download batch across the whole registry.
type DownloadResult struct {
	Message             string        `json:"message"`
	DownloadedFiles     []string      `json:"downloaded_files"`
	FailedDownloads     []ItemFailure `json:"failed_downloads"`
	TotalFiles          int           `json:"total_files"`
	SuccessfulDownloads int           `json:"successful_downloads"`
}

// ExtractResult summarizes one extraction batch across the whole registry.
type ExtractResult struct {
	Message               string        `json:"message"`
	ExtractedFiles        []string      `json:"extracted_files"`
	FailedExtractions     []ItemFailure `json:"failed_extractions"`
	TotalFiles            int           `json:"total_files"`
	SuccessfulExtractions int           `json:"successful_extractions"`
}

// FileInfo describes one stored artifact for listing.
type FileInfo struct {
	Name         string  `json:"name"`
	SizeBytes    int64   `json:"size_bytes"`
	SizeMB       float64 `json:"size_mb"`
	LastModified string  `json:"last_modified,omitempty"`
}

// FileListResult is the projection of the backend's listing.
type FileListResult struct {
	Files      []FileInfo `json:"files"`
	TotalFiles int        `json:"total_files"`
	Directory  string     `json:"directory"`
}

// DeleteResult summarizes a delete-all pass.
type DeleteResult struct {
	Message      string   `json:"message"`
	DeletedFiles []string `json:"deleted_files"`
	TotalDeleted int      `json:"total_deleted"`
}

// FullProcessResult combines a download batch and the extraction that
// followed it.
type FullProcessResult struct {
	Message  string              `json:"message"`
	Download FullProcessDownload `json:"download"`
	Extract  FullProcessExtract  `json:"extract"`
}

type FullProcessDownload struct {
	DownloadedFiles     []string `json:"downloaded_files"`
	SuccessfulDownloads int      `json:"successful_downloads"`
}

type FullProcessExtract struct {
	ExtractedFiles        []string `json:"extracted_files"`
	SuccessfulExtractions int      `json:"successful_extractions"`
}

// Service orchestrates dataset operations against a storage backend. All
// state lives in the backend; the service itself caches nothing between
// calls.
type Service struct {
	registry registry.Registry
	backend  storage.Backend
	client   *http.Client
}

func NewService(reg registry.Registry, backend storage.Backend) *Service {
	return &Service{
		registry: reg,
		backend:  backend,
		client: &http.Client{
			// Dataset files run to hundreds of megabytes.
			Timeout: 15 * time.Minute,
		},
	}
}

// Datasets returns the registered dataset filenames.
func (s *Service) Datasets() []string {
	return s.registry.Names()
}

// ListFiles lists every artifact in the backend with sizes in bytes and
// megabytes (two decimal places).
func (s *Service) ListFiles(ctx context.Context) (*FileListResult, error) {
	objects, err := s.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	files := make([]FileInfo, 0, len(objects))
	for _, obj := range objects {
		info := FileInfo{
			Name:      obj.Name,
			SizeBytes: obj.Size,
			SizeMB:    math.Round(float64(obj.Size)/(1024*1024)*100) / 100,
		}
		if !obj.LastModified.IsZero() {
			info.LastModified = obj.LastModified.UTC().Format(time.RFC3339)
		}
		files = append(files, info)
	}

	return &FileListResult{
		Files:      files,
		TotalFiles: len(files),
		Directory:  s.backend.Location(),
	}, nil
}

// DeleteAll removes every artifact the backend lists. Individual delete
// failures are logged and skipped; running against an empty backend deletes
// nothing and is not an error.
func (s *Service) DeleteAll(ctx context.Context) (*DeleteResult, error) {
	objects, err := s.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	deleted := []string{}
	for _, obj := range objects {
		if err := s.backend.Delete(ctx, obj.Name); err != nil {
			slog.ErrorContext(ctx, "failed to delete file", "name", obj.Name, "error", err)
			continue
		}
		slog.InfoContext(ctx, "deleted file", "name", obj.Name)
		deleted = append(deleted, obj.Name)
	}

	return &DeleteResult{
		Message:      "All files deleted successfully",
		DeletedFiles: deleted,
		TotalDeleted: len(deleted),
	}, nil
}

// FullProcess downloads the full registry and then extracts it. If no
// download succeeds, extraction is not attempted and ErrNothingDownloaded is
// returned; if extraction yields nothing, ErrNothingExtracted is returned.
func (s *Service) FullProcess(ctx context.Context) (*FullProcessResult, error) {
	download, err := s.Download(ctx)
	if err != nil {
		return nil, err
	}
	if download.SuccessfulDownloads == 0 {
		return nil, ErrNothingDownloaded
	}

	extract, err := s.Extract(ctx)
	if err != nil {
		return nil, err
	}
	if extract.SuccessfulExtractions == 0 {
		return nil, ErrNothingExtracted
	}

	return &FullProcessResult{
		Message: "Full data processing completed",
		Download: FullProcessDownload{
			DownloadedFiles:     download.DownloadedFiles,
			SuccessfulDownloads: download.SuccessfulDownloads,
		},
		Extract: FullProcessExtract{
			ExtractedFiles:        extract.ExtractedFiles,
			SuccessfulExtractions: extract.SuccessfulExtractions,
		},
	}, nil
}
