package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/registry"
)

// Extract decompresses every registered dataset whose compressed artifact is
// present in the backend. Entries are processed serially; each failure is
// recorded and the batch continues with the next entry. Decompression is
// whole-buffer: the extracted artifact is only written after the full
// payload decompressed cleanly, so a mid-way failure leaves nothing behind.
func (s *Service) Extract(ctx context.Context) (*ExtractResult, error) {
	log := slog.With("run_id", uuid.NewString())
	log.InfoContext(ctx, "starting extraction batch", "datasets", len(s.registry))

	result := &ExtractResult{
		Message:           "Extraction completed",
		ExtractedFiles:    []string{},
		FailedExtractions: []ItemFailure{},
		TotalFiles:        len(s.registry),
	}

	for _, entry := range s.registry {
		extracted, err := s.extractOne(ctx, entry)
		if err != nil {
			log.ErrorContext(ctx, "failed to extract dataset", "name", entry.Name, "error", err)
			result.FailedExtractions = append(result.FailedExtractions, ItemFailure{
				Filename: entry.Name,
				Error:    err.Error(),
			})
			continue
		}
		log.InfoContext(ctx, "dataset extracted", "name", extracted)
		result.ExtractedFiles = append(result.ExtractedFiles, extracted)
	}
	result.SuccessfulExtractions = len(result.ExtractedFiles)

	log.InfoContext(ctx, "extraction batch finished",
		"succeeded", result.SuccessfulExtractions,
		"failed", len(result.FailedExtractions))
	return result, nil
}

// extractOne decompresses a single dataset and returns the extracted name.
func (s *Service) extractOne(ctx context.Context, entry registry.Entry) (string, error) {
	exists, err := s.backend.Exists(ctx, entry.Name)
	if err != nil {
		slog.WarnContext(ctx, "existence check failed, treating as absent", "name", entry.Name, "error", err)
		exists = false
	}
	if !exists {
		return "", errors.New("Compressed file not found")
	}

	compressed, err := s.backend.Get(ctx, entry.Name)
	if err != nil {
		return "", err
	}

	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("decompress %s: %w", entry.Name, err)
	}
	plain, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decompress %s: %w", entry.Name, err)
	}
	if err := reader.Close(); err != nil {
		return "", fmt.Errorf("decompress %s: %w", entry.Name, err)
	}

	extracted := registry.ExtractedName(entry.Name)
	if err := s.backend.Put(ctx, extracted, plain); err != nil {
		return "", err
	}
	return extracted, nil
}
