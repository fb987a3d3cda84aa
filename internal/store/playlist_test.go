package store

import (
	"context"
	"testing"

	"github.com/praslea/lectern/internal/api"
	"github.com/praslea/lectern/internal/models"
	tu "github.com/praslea/lectern/internal/testing"
)

func TestPlaylists(t *testing.T) {
	ctx := context.Background()

	t.Run("FetchAll", func(t *testing.T) {
		t.Run("replaces the catalog wholesale", func(t *testing.T) {
			svc := &tu.MockPlaylistAPI{
				FetchAllFn: func(ctx context.Context) ([]models.Playlist, error) {
					return []models.Playlist{{ID: "p1"}, {ID: "p2"}}, nil
				},
			}
			store := NewPlaylists(svc)

			if err := store.FetchAll(ctx); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			state := store.State()
			if len(state.All) != 2 {
				t.Fatalf("expected 2 playlists, got %d", len(state.All))
			}
			if state.Loading {
				t.Error("expected loading cleared")
			}

			svc.FetchAllFn = func(ctx context.Context) ([]models.Playlist, error) {
				return []models.Playlist{{ID: "p3"}}, nil
			}
			if err := store.FetchAll(ctx); err != nil {
				t.Fatalf("refetch: %v", err)
			}
			if got := store.State().All; len(got) != 1 || got[0].ID != "p3" {
				t.Errorf("expected refetch to replace the catalog, got %+v", got)
			}
		})

		t.Run("failure records the error message", func(t *testing.T) {
			svc := &tu.MockPlaylistAPI{
				FetchAllFn: func(ctx context.Context) ([]models.Playlist, error) {
					return nil, &api.Error{Kind: api.KindNetwork, Message: "Failed to fetch playlists"}
				},
			}
			store := NewPlaylists(svc)

			if err := store.FetchAll(ctx); err == nil {
				t.Fatal("expected error")
			}

			state := store.State()
			if state.Err != "Failed to fetch playlists" {
				t.Errorf("expected error message recorded, got %q", state.Err)
			}
			if state.ErrKind != api.KindNetwork {
				t.Errorf("expected network error kind, got %v", state.ErrKind)
			}
		})
	})

	t.Run("FetchByID", func(t *testing.T) {
		t.Run("sets current without touching the lists", func(t *testing.T) {
			svc := &tu.MockPlaylistAPI{
				FetchAllFn: func(ctx context.Context) ([]models.Playlist, error) {
					return []models.Playlist{{ID: "p1"}}, nil
				},
				FetchByIDFn: func(ctx context.Context, playlistID string) (*models.Playlist, error) {
					return &models.Playlist{ID: playlistID, Title: "Algebra", Videos: []models.Video{{ID: "v1"}}}, nil
				},
			}
			store := NewPlaylists(svc)

			if err := store.FetchAll(ctx); err != nil {
				t.Fatalf("fetch all: %v", err)
			}
			if err := store.FetchByID(ctx, "p1"); err != nil {
				t.Fatalf("fetch by id: %v", err)
			}

			state := store.State()
			if state.Current == nil || state.Current.ID != "p1" {
				t.Fatalf("expected current playlist p1, got %+v", state.Current)
			}
			if len(state.Current.Videos) != 1 {
				t.Errorf("expected embedded videos, got %d", len(state.Current.Videos))
			}
			if len(state.All) != 1 {
				t.Errorf("expected catalog untouched, got %d entries", len(state.All))
			}
		})
	})

	t.Run("FetchByTeacher", func(t *testing.T) {
		t.Run("stores the teacher-scoped list", func(t *testing.T) {
			svc := &tu.MockPlaylistAPI{
				FetchByTeacherFn: func(ctx context.Context, teacherID string) ([]models.Playlist, error) {
					if teacherID != "t1" {
						t.Errorf("expected teacher id 't1', got %q", teacherID)
					}
					return []models.Playlist{{ID: "p1", Title: "Algebra"}}, nil
				},
			}
			store := NewPlaylists(svc)

			if err := store.FetchByTeacher(ctx, "t1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			mine := store.State().ByTeacher
			if len(mine) != 1 || mine[0].ID != "p1" || mine[0].Title != "Algebra" {
				t.Errorf("expected [{p1 Algebra}], got %+v", mine)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		seed := func(t *testing.T, svc *tu.MockPlaylistAPI) *Playlists {
			t.Helper()
			svc.FetchAllFn = func(ctx context.Context) ([]models.Playlist, error) {
				return []models.Playlist{{ID: "p1"}, {ID: "p2"}}, nil
			}
			svc.FetchByTeacherFn = func(ctx context.Context, teacherID string) ([]models.Playlist, error) {
				return []models.Playlist{{ID: "p1"}, {ID: "p2"}}, nil
			}
			svc.FetchByIDFn = func(ctx context.Context, playlistID string) (*models.Playlist, error) {
				return &models.Playlist{ID: playlistID}, nil
			}

			store := NewPlaylists(svc)
			if err := store.FetchAll(ctx); err != nil {
				t.Fatalf("fetch all: %v", err)
			}
			if err := store.FetchByTeacher(ctx, "t1"); err != nil {
				t.Fatalf("fetch by teacher: %v", err)
			}
			if err := store.FetchByID(ctx, "p1"); err != nil {
				t.Fatalf("fetch by id: %v", err)
			}
			return store
		}

		t.Run("removes from both lists but not current", func(t *testing.T) {
			store := seed(t, &tu.MockPlaylistAPI{})

			if err := store.Delete(ctx, "p1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			state := store.State()
			if len(state.All) != 1 || state.All[0].ID != "p2" {
				t.Errorf("expected p1 removed from catalog, got %+v", state.All)
			}
			if len(state.ByTeacher) != 1 || state.ByTeacher[0].ID != "p2" {
				t.Errorf("expected p1 removed from owned list, got %+v", state.ByTeacher)
			}
			if state.Current == nil || state.Current.ID != "p1" {
				t.Errorf("expected current to stay p1, got %+v", state.Current)
			}
		})

		t.Run("missing id is a no-op on the collections", func(t *testing.T) {
			store := seed(t, &tu.MockPlaylistAPI{})

			if err := store.Delete(ctx, "nope"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			state := store.State()
			if len(state.All) != 2 || len(state.ByTeacher) != 2 {
				t.Errorf("expected collections unchanged, got %d/%d", len(state.All), len(state.ByTeacher))
			}
		})

		t.Run("failure leaves the collections intact", func(t *testing.T) {
			svc := &tu.MockPlaylistAPI{}
			store := seed(t, svc)
			svc.DeleteFn = func(ctx context.Context, playlistID string) error {
				return &api.Error{Message: "Failed to delete playlist"}
			}

			if err := store.Delete(ctx, "p1"); err == nil {
				t.Fatal("expected error")
			}

			state := store.State()
			if len(state.All) != 2 || len(state.ByTeacher) != 2 {
				t.Errorf("expected collections unchanged on failure, got %d/%d", len(state.All), len(state.ByTeacher))
			}
			if state.Err != "Failed to delete playlist" {
				t.Errorf("expected error recorded, got %q", state.Err)
			}
		})
	})

	t.Run("State", func(t *testing.T) {
		t.Run("returns copies, not aliases", func(t *testing.T) {
			svc := &tu.MockPlaylistAPI{
				FetchAllFn: func(ctx context.Context) ([]models.Playlist, error) {
					return []models.Playlist{{ID: "p1", Title: "Algebra"}}, nil
				},
			}
			store := NewPlaylists(svc)
			if err := store.FetchAll(ctx); err != nil {
				t.Fatalf("fetch all: %v", err)
			}

			snapshot := store.State()
			snapshot.All[0].Title = "mutated"

			if store.State().All[0].Title != "Algebra" {
				t.Error("expected snapshot mutation to not leak into the store")
			}
		})
	})
}
