// Playlist endpoints of the dashboard API.
package services

import (
	"context"
	"fmt"

	"github.com/praslea/lectern/internal/api"
	"github.com/praslea/lectern/internal/models"
)

// PlaylistService implements [PlaylistAPI] against /playList endpoints.
type PlaylistService struct {
	client *api.Client
}

var _ PlaylistAPI = (*PlaylistService)(nil)

// NewPlaylistService creates a playlist service over the given adapter.
func NewPlaylistService(client *api.Client) *PlaylistService {
	return &PlaylistService{client: client}
}

// FetchAll retrieves every playlist in the catalog. GET /playList.
func (p *PlaylistService) FetchAll(ctx context.Context) ([]models.Playlist, error) {
	var envelope struct {
		Playlists []models.Playlist `json:"playlists"`
	}

	opts := api.Options{Fallback: "Failed to fetch playlists"}
	if err := p.client.Get(ctx, "/playList", opts, &envelope); err != nil {
		return nil, err
	}

	return envelope.Playlists, nil
}

// FetchByID retrieves a single playlist with its videos. GET /playList/{id}.
func (p *PlaylistService) FetchByID(ctx context.Context, playlistID string) (*models.Playlist, error) {
	var envelope struct {
		Playlist models.Playlist `json:"playlist"`
	}

	endpoint := fmt.Sprintf("/playList/%s", playlistID)
	opts := api.Options{Fallback: "Failed to fetch playlist"}
	if err := p.client.Get(ctx, endpoint, opts, &envelope); err != nil {
		return nil, err
	}

	return &envelope.Playlist, nil
}

// FetchByTeacher retrieves the playlists owned by a teacher. GET /playList/teacher/{teacherId}.
func (p *PlaylistService) FetchByTeacher(ctx context.Context, teacherID string) ([]models.Playlist, error) {
	var envelope struct {
		Playlists []models.Playlist `json:"playlists"`
	}

	endpoint := fmt.Sprintf("/playList/teacher/%s", teacherID)
	opts := api.Options{Fallback: "Failed to fetch teacher playlists"}
	if err := p.client.Get(ctx, endpoint, opts, &envelope); err != nil {
		return nil, err
	}

	return envelope.Playlists, nil
}

// Delete removes a playlist by id. DELETE /playList/{id}.
func (p *PlaylistService) Delete(ctx context.Context, playlistID string) error {
	endpoint := fmt.Sprintf("/playList/%s", playlistID)
	opts := api.Options{Fallback: "Failed to delete playlist"}
	return p.client.Delete(ctx, endpoint, opts, nil)
}
