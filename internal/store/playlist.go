package store

import (
	"context"

	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/services"
)

// PlaylistState is a point-in-time snapshot of the playlist store.
type PlaylistState struct {
	All       []models.Playlist
	Current   *models.Playlist
	ByTeacher []models.Playlist
	Lifecycle
}

// Playlists holds three independent collections over the same logical
// entities: the global catalog, the single "current" playlist, and the
// teacher-scoped list. Fetches replace their collection wholesale and
// never touch the other two.
type Playlists struct {
	tracker
	all       []models.Playlist
	current   *models.Playlist
	byTeacher []models.Playlist

	svc services.PlaylistAPI
}

// NewPlaylists creates a playlist store over the playlist service.
func NewPlaylists(svc services.PlaylistAPI) *Playlists {
	return &Playlists{svc: svc}
}

// State returns a snapshot of the current collections.
func (p *Playlists) State() PlaylistState {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := PlaylistState{
		All:       append([]models.Playlist(nil), p.all...),
		ByTeacher: append([]models.Playlist(nil), p.byTeacher...),
		Lifecycle: p.life,
	}
	if p.current != nil {
		cur := *p.current
		state.Current = &cur
	}
	return state
}

// FetchAll replaces the global catalog.
func (p *Playlists) FetchAll(ctx context.Context) error {
	req := p.begin()

	playlists, err := p.svc.FetchAll(ctx)
	if err != nil {
		p.resolve(ctx, req, err, nil)
		return err
	}

	p.resolve(ctx, req, nil, func() {
		p.all = playlists
	})
	return nil
}

// FetchByID replaces the current playlist.
func (p *Playlists) FetchByID(ctx context.Context, playlistID string) error {
	req := p.begin()

	playlist, err := p.svc.FetchByID(ctx, playlistID)
	if err != nil {
		p.resolve(ctx, req, err, nil)
		return err
	}

	p.resolve(ctx, req, nil, func() {
		p.current = playlist
	})
	return nil
}

// FetchByTeacher replaces the teacher-scoped list.
func (p *Playlists) FetchByTeacher(ctx context.Context, teacherID string) error {
	req := p.begin()

	playlists, err := p.svc.FetchByTeacher(ctx, teacherID)
	if err != nil {
		p.resolve(ctx, req, err, nil)
		return err
	}

	p.resolve(ctx, req, nil, func() {
		p.byTeacher = playlists
	})
	return nil
}

// Delete removes the playlist from the server, then drops it from both the
// global catalog and the teacher-scoped list. The current slot is left
// alone even when it holds the deleted playlist; callers that care refetch.
func (p *Playlists) Delete(ctx context.Context, playlistID string) error {
	req := p.begin()

	if err := p.svc.Delete(ctx, playlistID); err != nil {
		p.resolve(ctx, req, err, nil)
		return err
	}

	p.resolve(ctx, req, nil, func() {
		p.all = withoutPlaylist(p.all, playlistID)
		p.byTeacher = withoutPlaylist(p.byTeacher, playlistID)
	})
	return nil
}

func withoutPlaylist(playlists []models.Playlist, id string) []models.Playlist {
	kept := playlists[:0:0]
	for _, playlist := range playlists {
		if playlist.ID != id {
			kept = append(kept, playlist)
		}
	}
	return kept
}
