// package formatter provides functions to export playlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/praslea/lectern/internal/models"
)

// ExportToCSV converts a playlist's videos to CSV with columns: ID, Title, Description, VideoURL, ThumbnailURL
func ExportToCSV(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Description", "VideoURL", "ThumbnailURL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, video := range playlist.Videos {
		record := []string{
			video.ID,
			video.Title,
			video.Description,
			video.VideoURL,
			video.ThumbnailURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown with an optional cover image reference
func ExportToMarkdown(playlist *models.Playlist, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Title))

	if imageFilename != "" {
		buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", imageFilename))
	}

	if playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("%s\n\n", playlist.Description))
	}

	buf.WriteString(fmt.Sprintf("**Videos:** %d\n\n", len(playlist.Videos)))

	if len(playlist.Videos) > 0 {
		buf.WriteString("| # | Title | Description |\n")
		buf.WriteString("|---|-------|-------------|\n")
		for i, video := range playlist.Videos {
			title := video.Title
			if video.VideoURL != "" {
				title = fmt.Sprintf("[%s](%s)", video.Title, video.VideoURL)
			}
			buf.WriteString(fmt.Sprintf("| %d | %s | %s |\n", i+1, title, escapePipes(video.Description)))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to a plain text listing
func ExportToText(playlist *models.Playlist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", playlist.Title))
	buf.WriteString(strings.Repeat("=", len(playlist.Title)) + "\n\n")

	if playlist.Description != "" {
		buf.WriteString(playlist.Description + "\n\n")
	}

	for i, video := range playlist.Videos {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, video.Title))
		if video.Description != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", video.Description))
		}
	}

	return buf.Bytes()
}

// DownloadCoverImage fetches a playlist's cover image into dir and returns
// the local filename, for linking from Markdown exports.
func DownloadCoverImage(coverURL, dir, base string) (string, error) {
	if coverURL == "" {
		return "", nil
	}

	resp, err := http.Get(coverURL)
	if err != nil {
		return "", fmt.Errorf("failed to download cover image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download cover image: status %d", resp.StatusCode)
	}

	filename := base + ".jpg"
	out, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("failed to save cover image: %w", err)
	}

	return filename, nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
