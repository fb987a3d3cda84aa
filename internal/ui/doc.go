// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow over the dashboard stores:
//  1. [PlaylistListView] : Browse the teacher's course playlists
//  2. [VideoListView] : Inspect the videos of a selected playlist
//  3. [ConfirmDeleteView] : Confirm playlist or video deletion
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Store operations run inside tea commands; their settlements are
// delivered back as messages, mirroring the dispatch → settle → re-render
// loop of the dashboard.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, d, y/n, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
