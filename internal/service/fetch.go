package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/registry"
)

// Download fetches every registered dataset concurrently and stores the
// compressed files in the backend. Existing registry artifacts are cleared
// first so each batch starts clean. A single dataset failing never aborts
// the batch; per-item outcomes are collected into the result. The call
// itself fails only when the backend cannot be prepared.
func (s *Service) Download(ctx context.Context) (*DownloadResult, error) {
	log := slog.With("run_id", uuid.NewString())

	if err := s.backend.Ensure(ctx); err != nil {
		return nil, fmt.Errorf("prepare storage: %w", err)
	}

	s.clearExisting(ctx, log)

	log.InfoContext(ctx, "starting download batch", "datasets", len(s.registry))

	// One goroutine per registry entry; each records its outcome in its own
	// slot and never returns an error, so every task runs to completion.
	outcomes := make([]error, len(s.registry))
	var g errgroup.Group
	for i, entry := range s.registry {
		g.Go(func() error {
			outcomes[i] = s.fetchOne(ctx, entry)
			return nil
		})
	}
	g.Wait()

	result := &DownloadResult{
		Message:         "Download completed",
		DownloadedFiles: []string{},
		FailedDownloads: []ItemFailure{},
		TotalFiles:      len(s.registry),
	}
	for i, entry := range s.registry {
		if err := outcomes[i]; err != nil {
			log.ErrorContext(ctx, "failed to download dataset", "name", entry.Name, "error", err)
			result.FailedDownloads = append(result.FailedDownloads, ItemFailure{
				Filename: entry.Name,
				Error:    err.Error(),
			})
			continue
		}
		log.InfoContext(ctx, "dataset downloaded", "name", entry.Name)
		result.DownloadedFiles = append(result.DownloadedFiles, entry.Name)
	}
	result.SuccessfulDownloads = len(result.DownloadedFiles)

	log.InfoContext(ctx, "download batch finished",
		"succeeded", result.SuccessfulDownloads,
		"failed", len(result.FailedDownloads))
	return result, nil
}

// fetchOne downloads a single dataset and stores it under its registry name.
func (s *Service) fetchOne(ctx context.Context, entry registry.Entry) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, entry.URL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if err := s.backend.Put(ctx, entry.Name, data); err != nil {
		return err
	}
	return nil
}

// clearExisting removes any prior artifacts for the registered datasets,
// both compressed and extracted forms. Deletes are best-effort: a failure is
// logged and the batch proceeds.
func (s *Service) clearExisting(ctx context.Context, log *slog.Logger) {
	for _, entry := range s.registry {
		for _, name := range []string{entry.Name, registry.ExtractedName(entry.Name)} {
			if err := s.backend.Delete(ctx, name); err != nil {
				log.WarnContext(ctx, "failed to clear existing file", "name", name, "error", err)
			}
		}
	}
}
