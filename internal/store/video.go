package store

import (
	"context"

	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/services"
)

// VideoState is a point-in-time snapshot of the video store.
type VideoState struct {
	Videos []models.Video
	Lifecycle
}

// Videos holds the flat video collection. The playlist association is only
// carried by the add call's target id; a playlist's embedded video list
// held elsewhere is not spliced, callers refetch that playlist.
type Videos struct {
	tracker
	videos []models.Video

	svc services.VideoAPI
}

// NewVideos creates a video store over the video service.
func NewVideos(svc services.VideoAPI) *Videos {
	return &Videos{svc: svc}
}

// State returns a snapshot of the current collection.
func (v *Videos) State() VideoState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return VideoState{
		Videos:    append([]models.Video(nil), v.videos...),
		Lifecycle: v.life,
	}
}

// Add uploads a video into the playlist and appends the stored entity to
// the flat collection.
func (v *Videos) Add(ctx context.Context, playlistID string, form services.VideoForm) error {
	req := v.begin()

	video, err := v.svc.Add(ctx, playlistID, form)
	if err != nil {
		v.resolve(ctx, req, err, nil)
		return err
	}

	v.resolve(ctx, req, nil, func() {
		v.videos = append(v.videos, *video)
	})
	return nil
}

// Update replaces the matching entity in place. Entities are matched by
// id, collection order is preserved, and the replacement is atomic: either
// the whole updated record lands or nothing changes.
func (v *Videos) Update(ctx context.Context, videoID string, update services.VideoUpdate) error {
	req := v.begin()

	video, err := v.svc.Update(ctx, videoID, update)
	if err != nil {
		v.resolve(ctx, req, err, nil)
		return err
	}

	v.resolve(ctx, req, nil, func() {
		for i := range v.videos {
			if v.videos[i].ID == video.ID {
				v.videos[i] = *video
			}
		}
	})
	return nil
}

// Delete removes the video from the server, then drops the matching entity
// from the collection.
func (v *Videos) Delete(ctx context.Context, videoID string) error {
	req := v.begin()

	if err := v.svc.Delete(ctx, videoID); err != nil {
		v.resolve(ctx, req, err, nil)
		return err
	}

	v.resolve(ctx, req, nil, func() {
		kept := v.videos[:0:0]
		for _, video := range v.videos {
			if video.ID != videoID {
				kept = append(kept, video)
			}
		}
		v.videos = kept
	})
	return nil
}
