package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/praslea/lectern/internal/formatter"
	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/shared"
	"golang.org/x/time/rate"
)

// BulkExportOpts contains configuration for bulk playlist exports.
type BulkExportOpts struct {
	Format      string  // Export format: json, csv, markdown, txt
	OutputDir   string  // Base output directory (default: playlist_export_{epoch})
	NumWorkers  int     // Concurrent workers (default: 5)
	RateLimit   float64 // Requests per second (default: 5)
	CoverImages bool    // Download cover images alongside Markdown exports
}

// PlaylistExportResult records the outcome of exporting a single playlist.
type PlaylistExportResult struct {
	PlaylistID string `json:"playlist_id"`
	Title      string `json:"title"`
	OutputPath string `json:"output_path,omitempty"`
	Success    bool   `json:"success"`
	Error      error  `json:"-"`
}

// BulkExportResult summarizes a bulk export run.
type BulkExportResult struct {
	TotalPlaylists  int
	SuccessCount    int
	FailedCount     int
	OutputDirectory string
	Results         []PlaylistExportResult
}

type exportJob struct {
	playlist *models.Playlist
}

// BulkExport exports multiple playlists concurrently with rate limiting
// and progress tracking.
//
// A worker pool renders and writes files while a single producer fetches
// playlists, paced by the rate limiter. Partial failures are collected
// rather than aborting the run, and a manifest summarizes the results.
func (e *DashboardEngine) BulkExport(ctx context.Context, progress chan<- ProgressUpdate, ids []string, opts BulkExportOpts) (*BulkExportResult, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: playlist service not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("playlist_export_%d", time.Now().Unix())
	}
	if opts.Format == "" {
		opts.Format = "json"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkExportResult{
		TotalPlaylists:  len(ids),
		OutputDirectory: opts.OutputDir,
		Results:         make([]PlaylistExportResult, 0, len(ids)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan exportJob, len(ids))
	results := make(chan PlaylistExportResult, len(ids))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(&wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, playlistID := range ids {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				return
			}

			playlist, err := e.svc.FetchByID(ctx, playlistID)
			if err != nil {
				results <- PlaylistExportResult{
					PlaylistID: playlistID,
					Title:      fmt.Sprintf("Unknown (%s)", playlistID),
					Error:      fmt.Errorf("failed to fetch playlist: %w", err),
				}
				continue
			}

			e.sendProgress(progress, exportingUpdate(i+1, len(ids), playlist.Title))
			jobs <- exportJob{playlist: playlist}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.Success {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
		result.Results = append(result.Results, res)
	}

	e.sendProgress(progress, writeManifestUpdate())
	if err := writeManifest(opts.OutputDir, result); err != nil {
		return result, fmt.Errorf("export finished but manifest failed: %w", err)
	}

	return result, nil
}

func (e *DashboardEngine) exportWorker(wg *sync.WaitGroup, jobs <-chan exportJob, results chan<- PlaylistExportResult, opts BulkExportOpts) {
	defer wg.Done()

	for job := range jobs {
		playlist := job.playlist
		res := PlaylistExportResult{PlaylistID: playlist.ID, Title: playlist.Title}

		data, ext, err := renderPlaylist(playlist, opts)
		if err != nil {
			res.Error = err
			results <- res
			continue
		}

		path := filepath.Join(opts.OutputDir, sanitizeFilename(playlist.Title)+ext)
		if err := os.WriteFile(path, data, 0644); err != nil {
			res.Error = fmt.Errorf("failed to write export file: %w", err)
			results <- res
			continue
		}

		res.OutputPath = path
		res.Success = true
		results <- res
	}
}

func renderPlaylist(playlist *models.Playlist, opts BulkExportOpts) ([]byte, string, error) {
	switch opts.Format {
	case "json":
		data, err := json.MarshalIndent(playlist, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal playlist: %w", err)
		}
		return data, ".json", nil
	case "csv":
		data, err := formatter.ExportToCSV(playlist)
		return data, ".csv", err
	case "markdown", "md":
		image := ""
		if opts.CoverImages {
			// Best effort; a missing cover just drops the image reference.
			image, _ = formatter.DownloadCoverImage(playlist.CoverImage, opts.OutputDir, sanitizeFilename(playlist.Title))
		}
		data, err := formatter.ExportToMarkdown(playlist, image)
		return data, ".md", err
	case "txt", "text":
		return formatter.ExportToText(playlist), ".txt", nil
	default:
		return nil, "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, opts.Format)
	}
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "", " ", "_")
	sanitized := replacer.Replace(name)
	if sanitized == "" {
		sanitized = "playlist"
	}
	return sanitized
}

func writeManifest(dir string, result *BulkExportResult) error {
	manifest := struct {
		GeneratedAt time.Time              `json:"generated_at"`
		Total       int                    `json:"total"`
		Succeeded   int                    `json:"succeeded"`
		Failed      int                    `json:"failed"`
		Results     []PlaylistExportResult `json:"results"`
	}{
		GeneratedAt: time.Now().UTC(),
		Total:       result.TotalPlaylists,
		Succeeded:   result.SuccessCount,
		Failed:      result.FailedCount,
		Results:     result.Results,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	return os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0644)
}
