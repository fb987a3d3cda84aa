package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/shared"
)

// Cache persists fetched playlists and their videos locally for offline
// listing. It is opt-in: nothing is written unless a caller asks.
type Cache struct {
	db *sql.DB
}

// NewCache creates a cache over an open, migrated database.
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db}
}

// SavePlaylist upserts the playlist and replaces its cached videos.
func (c *Cache) SavePlaylist(playlist models.Playlist) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO playlists (id, title, description, cover_image, cached_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP) ON CONFLICT(id) DO UPDATE SET title = excluded.title, description = excluded.description, cover_image = excluded.cover_image, cached_at = CURRENT_TIMESTAMP",
		playlist.ID, playlist.Title, playlist.Description, playlist.CoverImage,
	)
	if err != nil {
		return fmt.Errorf("failed to cache playlist %s: %w", playlist.ID, err)
	}

	if _, err := tx.Exec("DELETE FROM videos WHERE playlist_id = ?", playlist.ID); err != nil {
		return fmt.Errorf("failed to clear cached videos for %s: %w", playlist.ID, err)
	}

	for _, video := range playlist.Videos {
		_, err := tx.Exec(
			"INSERT INTO videos (id, playlist_id, title, description, video_url, thumbnail_url) VALUES (?, ?, ?, ?, ?, ?)",
			video.ID, playlist.ID, video.Title, video.Description, video.VideoURL, video.ThumbnailURL,
		)
		if err != nil {
			return fmt.Errorf("failed to cache video %s: %w", video.ID, err)
		}
	}

	return tx.Commit()
}

// ListPlaylists returns all cached playlists without their videos.
func (c *Cache) ListPlaylists() ([]models.Playlist, error) {
	rows, err := c.db.Query("SELECT id, title, description, cover_image FROM playlists ORDER BY cached_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list cached playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var playlist models.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Title, &playlist.Description, &playlist.CoverImage); err != nil {
			return nil, fmt.Errorf("failed to scan cached playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}

	return playlists, rows.Err()
}

// GetPlaylist returns one cached playlist with its videos.
func (c *Cache) GetPlaylist(playlistID string) (*models.Playlist, error) {
	var playlist models.Playlist
	err := c.db.QueryRow(
		"SELECT id, title, description, cover_image FROM playlists WHERE id = ?", playlistID,
	).Scan(&playlist.ID, &playlist.Title, &playlist.Description, &playlist.CoverImage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached playlist: %w", err)
	}

	rows, err := c.db.Query(
		"SELECT id, title, description, video_url, thumbnail_url FROM videos WHERE playlist_id = ?", playlistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached videos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var video models.Video
		if err := rows.Scan(&video.ID, &video.Title, &video.Description, &video.VideoURL, &video.ThumbnailURL); err != nil {
			return nil, fmt.Errorf("failed to scan cached video: %w", err)
		}
		playlist.Videos = append(playlist.Videos, video)
	}

	return &playlist, rows.Err()
}

// DeletePlaylist removes a cached playlist and its videos.
func (c *Cache) DeletePlaylist(playlistID string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM videos WHERE playlist_id = ?", playlistID); err != nil {
		return fmt.Errorf("failed to delete cached videos: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM playlists WHERE id = ?", playlistID); err != nil {
		return fmt.Errorf("failed to delete cached playlist: %w", err)
	}

	return tx.Commit()
}
