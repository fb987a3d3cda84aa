package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/praslea/lectern/internal/models"
)

var (
	_ list.Item = playlistItem{}
	_ list.Item = videoItem{}
)

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist models.Playlist
}

func (i playlistItem) FilterValue() string { return i.playlist.Title }
func (i playlistItem) Title() string       { return i.playlist.Title }
func (i playlistItem) Description() string {
	desc := fmt.Sprintf("%d videos", len(i.playlist.Videos))
	if i.playlist.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.playlist.Description)
	}
	return desc
}

// videoItem wraps [models.Video] to implement [list.Item].
type videoItem struct {
	video models.Video
}

func (i videoItem) FilterValue() string { return i.video.Title }
func (i videoItem) Title() string       { return i.video.Title }
func (i videoItem) Description() string {
	if i.video.Description != "" {
		return i.video.Description
	}
	return i.video.VideoURL
}
