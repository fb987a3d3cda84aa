// Out-of-band image hosting (Cloudinary-style unsigned upload).
//
// Profile pictures and cover images are uploaded here first; only the
// returned hosted URL is sent to the dashboard API.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadService posts files to an unsigned image-upload endpoint.
type UploadService struct {
	uploadURL  string
	preset     string
	httpClient *http.Client
}

// NewUploadService creates an upload service for the given endpoint and
// upload preset. A nil client uses [http.DefaultClient].
func NewUploadService(uploadURL, preset string, client *http.Client) *UploadService {
	if client == nil {
		client = http.DefaultClient
	}

	return &UploadService{
		uploadURL:  uploadURL,
		preset:     preset,
		httpClient: client,
	}
}

// UploadImage sends the file as a multipart form and returns the hosted URL.
func (u *UploadService) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("failed to write upload preset: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image upload failed: status %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	return result.SecureURL, nil
}
