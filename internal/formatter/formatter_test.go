package formatter

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/praslea/lectern/internal/models"
)

func testPlaylist() *models.Playlist {
	return &models.Playlist{
		ID:          "p1",
		Title:       "Algebra",
		Description: "Intro course",
		Videos: []models.Video{
			{ID: "v1", Title: "Linear equations", Description: "ax + b", VideoURL: "https://cdn/v1.mp4"},
			{ID: "v2", Title: "Quadratics", Description: "with | pipes", VideoURL: "https://cdn/v2.mp4"},
		},
	}
}

func TestFormatter(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		t.Run("writes header and one row per video", func(t *testing.T) {
			data, err := ExportToCSV(testPlaylist())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			lines := strings.Split(strings.TrimSpace(string(data)), "\n")
			if len(lines) != 3 {
				t.Fatalf("expected 3 lines, got %d", len(lines))
			}
			if lines[0] != "ID,Title,Description,VideoURL,ThumbnailURL" {
				t.Errorf("unexpected header: %s", lines[0])
			}
			if !strings.HasPrefix(lines[1], "v1,Linear equations") {
				t.Errorf("unexpected first row: %s", lines[1])
			}
		})

		t.Run("empty playlist has only the header", func(t *testing.T) {
			data, err := ExportToCSV(&models.Playlist{ID: "p1", Title: "Empty"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			lines := strings.Split(strings.TrimSpace(string(data)), "\n")
			if len(lines) != 1 {
				t.Errorf("expected header only, got %d lines", len(lines))
			}
		})
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		t.Run("renders title, counts, and linked table rows", func(t *testing.T) {
			data, err := ExportToMarkdown(testPlaylist(), "")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			md := string(data)
			if !strings.Contains(md, "# Algebra") {
				t.Error("expected title heading")
			}
			if !strings.Contains(md, "**Videos:** 2") {
				t.Error("expected video count")
			}
			if !strings.Contains(md, "[Linear equations](https://cdn/v1.mp4)") {
				t.Error("expected linked video title")
			}
			if !strings.Contains(md, "with \\| pipes") {
				t.Error("expected pipes escaped in table cells")
			}
		})

		t.Run("includes cover image reference when provided", func(t *testing.T) {
			data, err := ExportToMarkdown(testPlaylist(), "cover.jpg")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !strings.Contains(string(data), "![Cover](cover.jpg)") {
				t.Error("expected cover image reference")
			}
		})
	})

	t.Run("ExportToText", func(t *testing.T) {
		data := ExportToText(testPlaylist())
		text := string(data)

		if !strings.HasPrefix(text, "Algebra\n=======") {
			t.Errorf("expected underlined title, got %q", text[:20])
		}
		if !strings.Contains(text, "1. Linear equations") {
			t.Error("expected numbered video listing")
		}
		if !strings.Contains(text, "   ax + b") {
			t.Error("expected indented description")
		}
	})

	t.Run("DownloadCoverImage", func(t *testing.T) {
		t.Run("saves the image and returns the filename", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("jpeg bytes"))
			}))
			defer server.Close()

			dir := t.TempDir()
			filename, err := DownloadCoverImage(server.URL, dir, "algebra")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if filename != "algebra.jpg" {
				t.Errorf("expected algebra.jpg, got %s", filename)
			}

			data, err := os.ReadFile(filepath.Join(dir, filename))
			if err != nil {
				t.Fatalf("expected saved file: %v", err)
			}
			if string(data) != "jpeg bytes" {
				t.Errorf("unexpected file contents: %q", data)
			}
		})

		t.Run("empty URL is a no-op", func(t *testing.T) {
			filename, err := DownloadCoverImage("", t.TempDir(), "x")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if filename != "" {
				t.Errorf("expected empty filename, got %s", filename)
			}
		})

		t.Run("non-200 status is an error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			if _, err := DownloadCoverImage(server.URL, t.TempDir(), "x"); err == nil {
				t.Error("expected error for missing image")
			}
		})
	})
}
