// package tasks orchestrates multi-step dashboard operations with
// real-time progress reporting.
//
// The core abstraction is [DashboardEngine]: it refreshes the session and
// playlist stores together (profile, owned playlists, catalog) and runs
// bulk playlist exports. Operations emit progress updates via channels for
// non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"

	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/services"
	"github.com/praslea/lectern/internal/shared"
	"github.com/praslea/lectern/internal/store"
)

// RefreshResult summarizes a full dashboard refresh.
type RefreshResult struct {
	Teacher      *models.Teacher // Refreshed teacher record
	OwnedCount   int             // Playlists owned by the teacher
	CatalogCount int             // Playlists in the global catalog
}

// DashboardEngine drives the stores through multi-step operations.
type DashboardEngine struct {
	session   *store.Session
	playlists *store.Playlists
	svc       services.PlaylistAPI
}

// NewDashboardEngine creates an engine over the session and playlist
// stores. The playlist service is used directly for export fetches that
// should not disturb store state.
func NewDashboardEngine(session *store.Session, playlists *store.Playlists, svc services.PlaylistAPI) *DashboardEngine {
	return &DashboardEngine{
		session:   session,
		playlists: playlists,
		svc:       svc,
	}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *DashboardEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Refresh performs a full dashboard refresh: profile, the teacher's own
// playlists, then the global catalog. Each step settles into its store
// before the next begins, mirroring the dashboard's mount sequence.
func (e *DashboardEngine) Refresh(ctx context.Context, progress chan<- ProgressUpdate) (*RefreshResult, error) {
	if e.session == nil || e.playlists == nil {
		return nil, fmt.Errorf("%w: stores not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, fetchProfileUpdate())
	if err := e.session.Profile(ctx); err != nil {
		return nil, fmt.Errorf("failed to refresh profile: %w", err)
	}

	teacher := e.session.State().Teacher
	if teacher == nil {
		return nil, fmt.Errorf("%w: no teacher after profile fetch", shared.ErrNotAuthenticated)
	}

	e.sendProgress(progress, fetchOwnedUpdate(teacher.Name))
	if err := e.playlists.FetchByTeacher(ctx, teacher.ID); err != nil {
		return nil, fmt.Errorf("failed to refresh teacher playlists: %w", err)
	}

	e.sendProgress(progress, fetchCatalogUpdate())
	if err := e.playlists.FetchAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to refresh playlist catalog: %w", err)
	}

	state := e.playlists.State()
	return &RefreshResult{
		Teacher:      teacher,
		OwnedCount:   len(state.ByTeacher),
		CatalogCount: len(state.All),
	}, nil
}
