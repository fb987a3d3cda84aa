package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistListView ViewState = iota
	VideoListView
	ConfirmDeleteView
)

// deleteTarget identifies what the confirm view will delete.
type deleteTarget struct {
	playlistID string
	videoID    string
	title      string
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	session   *store.Session
	playlists *store.Playlists
	videos    *store.Videos

	width  int
	height int

	playlistList list.Model
	videoList    list.Model
	current      *models.Playlist
	pending      *deleteTarget

	err  error
	help help.Model
	keys keyMap
}

type playlistsLoadedMsg struct {
	playlists []models.Playlist
	err       error
}

type playlistLoadedMsg struct {
	playlist *models.Playlist
	err      error
}

type deletedMsg struct {
	target deleteTarget
	err    error
}

// NewModel creates a new TUI model over the dashboard stores.
func NewModel(ctx context.Context, session *store.Session, playlists *store.Playlists, videos *store.Videos) *Model {
	return &Model{
		ctx:       ctx,
		view:      PlaylistListView,
		session:   session,
		playlists: playlists,
		videos:    videos,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init loads the teacher's playlists.
func (m *Model) Init() tea.Cmd {
	return m.loadPlaylists()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.playlistList.Width() == 0 {
			m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.videoList.Width() == 0 {
			m.videoList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlaylistListView:
			return m.handlePlaylistListKeys(msg)
		case VideoListView:
			return m.handleVideoListKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		}

	case playlistsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		m.playlistList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.playlistList.Title = "My Course Playlists"
		m.playlistList.SetSize(m.width-4, m.height-8)
		return m, nil

	case playlistLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = PlaylistListView
			return m, nil
		}
		m.current = msg.playlist
		items := make([]list.Item, len(msg.playlist.Videos))
		for i, video := range msg.playlist.Videos {
			items[i] = videoItem{video: video}
		}
		m.videoList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.videoList.Title = fmt.Sprintf("Videos in '%s'", msg.playlist.Title)
		m.videoList.SetSize(m.width-4, m.height-8)
		m.view = VideoListView
		return m, nil

	case deletedMsg:
		m.pending = nil
		if msg.err != nil {
			m.err = msg.err
			m.view = PlaylistListView
			return m, nil
		}
		if msg.target.videoID != "" {
			// Deleted a video: reload the playlist so the list reflects it.
			m.view = VideoListView
			return m, m.loadPlaylist(m.current.ID)
		}
		m.view = PlaylistListView
		return m, m.loadPlaylists()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case PlaylistListView:
		return m.renderPlaylistList()
	case VideoListView:
		return m.renderVideoList()
	case ConfirmDeleteView:
		return m.renderConfirm()
	default:
		return ""
	}
}

func (m *Model) handlePlaylistListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if pl, ok := m.selectedPlaylist(); ok {
			return m, m.loadPlaylist(pl.ID)
		}
	case "d":
		if pl, ok := m.selectedPlaylist(); ok {
			m.pending = &deleteTarget{playlistID: pl.ID, title: pl.Title}
			m.view = ConfirmDeleteView
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.playlistList, cmd = m.playlistList.Update(msg)
	return m, cmd
}

func (m *Model) handleVideoListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = PlaylistListView
		return m, nil
	case "d":
		if selected := m.videoList.SelectedItem(); selected != nil {
			if v, ok := selected.(videoItem); ok {
				m.pending = &deleteTarget{videoID: v.video.ID, title: v.video.Title}
				m.view = ConfirmDeleteView
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		if m.pending != nil && m.pending.videoID != "" {
			m.view = VideoListView
		} else {
			m.view = PlaylistListView
		}
		m.pending = nil
		return m, nil
	case "y":
		if m.pending != nil {
			return m, m.deletePending(*m.pending)
		}
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case PlaylistListView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case VideoListView:
		m.videoList, cmd = m.videoList.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedPlaylist() (models.Playlist, bool) {
	selected := m.playlistList.SelectedItem()
	if selected == nil {
		return models.Playlist{}, false
	}
	item, ok := selected.(playlistItem)
	return item.playlist, ok
}

// loadPlaylists fetches the teacher's playlists through the store and
// reads the settled snapshot back.
func (m *Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		teacher := m.session.State().Teacher
		if teacher == nil {
			if err := m.session.Profile(m.ctx); err != nil {
				return playlistsLoadedMsg{err: err}
			}
			teacher = m.session.State().Teacher
		}

		if err := m.playlists.FetchByTeacher(m.ctx, teacher.ID); err != nil {
			return playlistsLoadedMsg{err: err}
		}
		return playlistsLoadedMsg{playlists: m.playlists.State().ByTeacher}
	}
}

func (m *Model) loadPlaylist(playlistID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.playlists.FetchByID(m.ctx, playlistID); err != nil {
			return playlistLoadedMsg{err: err}
		}
		return playlistLoadedMsg{playlist: m.playlists.State().Current}
	}
}

func (m *Model) deletePending(target deleteTarget) tea.Cmd {
	return func() tea.Msg {
		var err error
		if target.videoID != "" {
			err = m.videos.Delete(m.ctx, target.videoID)
		} else {
			err = m.playlists.Delete(m.ctx, target.playlistID)
		}
		return deletedMsg{target: target, err: err}
	}
}

func (m *Model) renderPlaylistList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.delete, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.playlistList.View(), helpView)
}

func (m *Model) renderVideoList() string {
	helpKeys := []key.Binding{m.keys.delete, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.videoList.View(), helpView)
}

func (m *Model) renderConfirm() string {
	if m.pending == nil {
		return ""
	}

	kind := "playlist"
	if m.pending.videoID != "" {
		kind = "video"
	}

	title := styles.title.Render(fmt.Sprintf("Delete %s '%s'?", kind, m.pending.title))
	warning := styles.warn.Render("This cannot be undone.")

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, warning, helpView)
}
