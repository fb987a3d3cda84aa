package main

import (
	"context"
	"fmt"

	"github.com/praslea/lectern/internal/shared"
	"github.com/urfave/cli/v3"
)

// CacheSave fetches a playlist from the dashboard and stores it, videos
// included, in the local database.
func (r *Runner) CacheSave(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCache(); err != nil {
		return err
	}

	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist ID is required", shared.ErrMissingArgument)
	}

	r.logger.Infof("caching playlist: %s", playlistID)

	if err := r.playlists.FetchByID(ctx, playlistID); err != nil {
		return fmt.Errorf("failed to fetch playlist: %w", err)
	}

	playlist := r.playlists.State().Current
	if err := r.cache.SavePlaylist(*playlist); err != nil {
		return fmt.Errorf("failed to cache playlist: %w", err)
	}

	r.logger.Infof("cached playlist: %s (%d videos)", playlist.Title, len(playlist.Videos))

	r.writePlainln("✓ Playlist cached: %s", playlist.Title)
	r.writePlainln("  Videos: %d", len(playlist.Videos))
	return nil
}

// CacheList prints locally cached playlists.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCache(); err != nil {
		return err
	}

	playlists, err := r.cache.ListPlaylists()
	if err != nil {
		return fmt.Errorf("failed to list cached playlists: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	r.writePlainHeader(fmt.Sprintf("Cached playlists (%d)", len(playlists)))
	for i, pl := range playlists {
		r.writePlain("%d. %s (%s)\n", i+1, pl.Title, pl.ID)
	}
	return nil
}

// CacheShow prints a cached playlist with its videos, without touching the
// network.
func (r *Runner) CacheShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCache(); err != nil {
		return err
	}

	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist ID is required", shared.ErrMissingArgument)
	}

	playlist, err := r.cache.GetPlaylist(playlistID)
	if err != nil {
		return fmt.Errorf("failed to read cached playlist: %w", err)
	}

	if cmd.Bool("pretty") {
		r.writePlainHeader(playlist.Title)
		if playlist.Description != "" {
			r.writePlain("%s\n\n", playlist.Description)
		}
		for i, video := range playlist.Videos {
			r.writePlain("%d. %s (%s)\n", i+1, video.Title, video.ID)
		}
		return nil
	}

	return r.writeJSON(playlist, false)
}

// CacheDelete removes a playlist from the local cache.
func (r *Runner) CacheDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireCache(); err != nil {
		return err
	}

	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist ID is required", shared.ErrMissingArgument)
	}

	if err := r.cache.DeletePlaylist(playlistID); err != nil {
		return fmt.Errorf("failed to delete cached playlist: %w", err)
	}

	return r.writePlain("✓ Removed from cache: %s\n", playlistID)
}
