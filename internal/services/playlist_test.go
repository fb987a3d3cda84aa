package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/praslea/lectern/internal/api"
)

func TestPlaylistService(t *testing.T) {
	ctx := context.Background()

	newService := func(handler http.HandlerFunc) (*PlaylistService, *httptest.Server) {
		server := httptest.NewServer(handler)
		client := api.NewClient(server.URL, nil, 0, nil)
		return NewPlaylistService(client), server
	}

	t.Run("FetchAll", func(t *testing.T) {
		t.Run("unwraps the playlists envelope", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playList" {
					t.Errorf("expected /playList, got %s", r.URL.Path)
				}
				w.Write([]byte(`{"playlists": [{"_id": "p1", "title": "Algebra"}, {"_id": "p2", "title": "Geometry"}]}`))
			})
			defer server.Close()

			playlists, err := svc.FetchAll(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(playlists) != 2 {
				t.Fatalf("expected 2 playlists, got %d", len(playlists))
			}
			if playlists[0].ID != "p1" || playlists[0].Title != "Algebra" {
				t.Errorf("unexpected first playlist: %+v", playlists[0])
			}
		})

		t.Run("empty envelope yields no playlists", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"playlists": []}`))
			})
			defer server.Close()

			playlists, err := svc.FetchAll(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(playlists) != 0 {
				t.Errorf("expected empty result, got %d", len(playlists))
			}
		})
	})

	t.Run("FetchByID", func(t *testing.T) {
		t.Run("unwraps the playlist envelope with videos", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playList/p1" {
					t.Errorf("expected /playList/p1, got %s", r.URL.Path)
				}
				w.Write([]byte(`{"playlist": {"_id": "p1", "title": "Algebra", "videos": [{"_id": "v1", "title": "Linear equations"}]}}`))
			})
			defer server.Close()

			playlist, err := svc.FetchByID(ctx, "p1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if playlist.ID != "p1" {
				t.Errorf("expected playlist p1, got %q", playlist.ID)
			}
			if len(playlist.Videos) != 1 || playlist.Videos[0].ID != "v1" {
				t.Errorf("expected embedded videos, got %+v", playlist.Videos)
			}
		})
	})

	t.Run("FetchByTeacher", func(t *testing.T) {
		t.Run("scopes the request to the teacher", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/playList/teacher/t1" {
					t.Errorf("expected /playList/teacher/t1, got %s", r.URL.Path)
				}
				w.Write([]byte(`{"playlists": [{"_id": "p1", "title": "Algebra"}]}`))
			})
			defer server.Close()

			playlists, err := svc.FetchByTeacher(ctx, "t1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(playlists) != 1 || playlists[0].ID != "p1" {
				t.Errorf("expected [{p1}], got %+v", playlists)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("issues DELETE against the playlist path", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("expected DELETE, got %s", r.Method)
				}
				if r.URL.Path != "/playList/p1" {
					t.Errorf("expected /playList/p1, got %s", r.URL.Path)
				}
				w.Write([]byte(`{"message": "deleted"}`))
			})
			defer server.Close()

			if err := svc.Delete(ctx, "p1"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("surfaces the delete fallback", func(t *testing.T) {
			svc, server := newService(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			})
			defer server.Close()

			err := svc.Delete(ctx, "p1")
			var apiErr *api.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *api.Error, got %T", err)
			}
			if apiErr.Message != "Failed to delete playlist" {
				t.Errorf("expected 'Failed to delete playlist', got %q", apiErr.Message)
			}
		})
	})
}
