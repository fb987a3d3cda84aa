package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/praslea/lectern/internal/models"
	tu "github.com/praslea/lectern/internal/testing"
)

func TestBulkExport(t *testing.T) {
	ctx := context.Background()

	catalog := map[string]*models.Playlist{
		"p1": {ID: "p1", Title: "Algebra", Videos: []models.Video{{ID: "v1", Title: "Linear equations"}}},
		"p2": {ID: "p2", Title: "Geometry", Videos: []models.Video{{ID: "v2", Title: "Triangles"}}},
	}

	newEngine := func(svc *tu.MockPlaylistAPI) *DashboardEngine {
		return NewDashboardEngine(nil, nil, svc)
	}

	t.Run("exports playlists as JSON with a manifest", func(t *testing.T) {
		svc := &tu.MockPlaylistAPI{
			FetchByIDFn: func(ctx context.Context, playlistID string) (*models.Playlist, error) {
				return catalog[playlistID], nil
			},
		}
		dir := t.TempDir()

		result, err := newEngine(svc).BulkExport(ctx, nil, []string{"p1", "p2"}, BulkExportOpts{
			Format:    "json",
			OutputDir: dir,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.SuccessCount != 2 || result.FailedCount != 0 {
			t.Errorf("expected 2 successes, got %d/%d", result.SuccessCount, result.FailedCount)
		}

		data, err := os.ReadFile(filepath.Join(dir, "Algebra.json"))
		if err != nil {
			t.Fatalf("expected exported file: %v", err)
		}
		var exported models.Playlist
		if err := json.Unmarshal(data, &exported); err != nil {
			t.Fatalf("expected valid JSON export: %v", err)
		}
		if exported.ID != "p1" {
			t.Errorf("expected playlist p1 in export, got %q", exported.ID)
		}

		manifest, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
		if err != nil {
			t.Fatalf("expected manifest: %v", err)
		}
		if !strings.Contains(string(manifest), `"succeeded": 2`) {
			t.Errorf("expected success count in manifest, got %s", manifest)
		}
	})

	t.Run("collects partial failures without aborting", func(t *testing.T) {
		svc := &tu.MockPlaylistAPI{
			FetchByIDFn: func(ctx context.Context, playlistID string) (*models.Playlist, error) {
				if playlistID == "missing" {
					return nil, errors.New("not found")
				}
				return catalog[playlistID], nil
			},
		}

		result, err := newEngine(svc).BulkExport(ctx, nil, []string{"p1", "missing"}, BulkExportOpts{
			Format:    "json",
			OutputDir: t.TempDir(),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.SuccessCount != 1 {
			t.Errorf("expected 1 success, got %d", result.SuccessCount)
		}
		if result.FailedCount != 1 {
			t.Errorf("expected 1 failure, got %d", result.FailedCount)
		}
	})

	t.Run("renders the requested format", func(t *testing.T) {
		svc := &tu.MockPlaylistAPI{
			FetchByIDFn: func(ctx context.Context, playlistID string) (*models.Playlist, error) {
				return catalog[playlistID], nil
			},
		}

		formats := map[string]string{
			"csv":      "Algebra.csv",
			"markdown": "Algebra.md",
			"txt":      "Algebra.txt",
		}
		for format, filename := range formats {
			t.Run(format, func(t *testing.T) {
				dir := t.TempDir()
				if _, err := newEngine(svc).BulkExport(ctx, nil, []string{"p1"}, BulkExportOpts{
					Format:    format,
					OutputDir: dir,
				}); err != nil {
					t.Fatalf("expected no error, got %v", err)
				}

				if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
					t.Errorf("expected %s: %v", filename, err)
				}
			})
		}
	})

	t.Run("unknown format fails each playlist", func(t *testing.T) {
		svc := &tu.MockPlaylistAPI{
			FetchByIDFn: func(ctx context.Context, playlistID string) (*models.Playlist, error) {
				return catalog[playlistID], nil
			},
		}

		result, err := newEngine(svc).BulkExport(ctx, nil, []string{"p1"}, BulkExportOpts{
			Format:    "yaml",
			OutputDir: t.TempDir(),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.FailedCount != 1 {
			t.Errorf("expected format failure counted, got %d", result.FailedCount)
		}
	})

	t.Run("caps the worker count", func(t *testing.T) {
		svc := &tu.MockPlaylistAPI{
			FetchByIDFn: func(ctx context.Context, playlistID string) (*models.Playlist, error) {
				return catalog["p1"], nil
			},
		}

		if _, err := newEngine(svc).BulkExport(ctx, nil, []string{"p1"}, BulkExportOpts{
			Format:     "json",
			OutputDir:  t.TempDir(),
			NumWorkers: 50,
		}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("sanitizeFilename", func(t *testing.T) {
		cases := map[string]string{
			"My Playlist":  "My_Playlist",
			"a/b\\c:d":     "a-b-c-d",
			"what? *stars": "what_stars",
			"":             "playlist",
		}
		for input, want := range cases {
			if got := sanitizeFilename(input); got != want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", input, got, want)
			}
		}
	})
}
