// Video endpoints of the dashboard API.
package services

import (
	"context"
	"fmt"

	"github.com/praslea/lectern/internal/api"
	"github.com/praslea/lectern/internal/models"
)

// VideoForm is the multipart payload for a video upload.
type VideoForm struct {
	Title       string
	Description string
	Video       *FilePart
	Thumbnail   *FilePart
}

// VideoUpdate is the JSON payload for a metadata update. Zero-value fields
// are omitted so partial updates do not blank existing values.
type VideoUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// VideoService implements [VideoAPI] against /Videos endpoints.
type VideoService struct {
	client *api.Client
}

var _ VideoAPI = (*VideoService)(nil)

// NewVideoService creates a video service over the given adapter.
func NewVideoService(client *api.Client) *VideoService {
	return &VideoService{client: client}
}

// Add uploads a video into a playlist. POST /Videos/{playlistId} (multipart).
func (v *VideoService) Add(ctx context.Context, playlistID string, form VideoForm) (*models.Video, error) {
	body := api.NewForm()
	body.Set("title", form.Title)
	body.Set("description", form.Description)
	if form.Video != nil {
		body.AddFile("video", form.Video.Filename, form.Video.Data)
	}
	if form.Thumbnail != nil {
		body.AddFile("thumbnail", form.Thumbnail.Filename, form.Thumbnail.Data)
	}

	var envelope struct {
		Video models.Video `json:"video"`
	}

	endpoint := fmt.Sprintf("/Videos/%s", playlistID)
	opts := api.Options{Fallback: "Failed to add video"}
	if err := v.client.PostMultipart(ctx, endpoint, body, opts, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Video, nil
}

// Update replaces a video's metadata. PUT /Videos/{videoId}.
func (v *VideoService) Update(ctx context.Context, videoID string, update VideoUpdate) (*models.Video, error) {
	var envelope struct {
		Video models.Video `json:"video"`
	}

	endpoint := fmt.Sprintf("/Videos/%s", videoID)
	opts := api.Options{Fallback: "Failed to update video"}
	if err := v.client.Put(ctx, endpoint, update, opts, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Video, nil
}

// Delete removes a video by id. DELETE /Videos/{videoId}.
func (v *VideoService) Delete(ctx context.Context, videoID string) error {
	endpoint := fmt.Sprintf("/Videos/%s", videoID)
	opts := api.Options{Fallback: "Failed to delete video"}
	return v.client.Delete(ctx, endpoint, opts, nil)
}
