// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles account and session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage your dashboard account and session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create a new teacher account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Full name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "qualification",
						Usage:    "Teaching qualification",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "experience",
						Usage:    "Years of teaching experience",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "subject",
						Usage:    "Subject taught",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "google",
						Usage: "Google account URL",
					},
					&cli.StringFlag{
						Name:  "github",
						Usage: "GitHub account URL",
					},
					&cli.StringFlag{
						Name:  "linkedin",
						Usage: "LinkedIn account URL",
					},
					&cli.StringFlag{
						Name:  "picture",
						Usage: "Path to a profile picture, uploaded to the image host first",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Log in and persist the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the session and stored token",
				Action: r.AuthLogout,
			},
			{
				Name:    "whoami",
				Aliases: []string{"profile"},
				Usage:   "Fetch the authenticated teacher profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AuthWhoami,
			},
		},
	}
}

// playlistCommand handles course playlist operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Course playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every playlist in the catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PlaylistList,
			},
			{
				Name:  "mine",
				Usage: "List playlists owned by the logged-in teacher",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.PlaylistMine,
			},
			{
				Name:  "show",
				Usage: "Show a single playlist with its videos",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.PlaylistShow,
			},
			{
				Name:  "create",
				Usage: "Create a new course playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Course title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Course description",
					},
					&cli.StringFlag{
						Name:  "cover",
						Usage: "Path to a cover image",
					},
				},
				Action: r.PlaylistCreate,
			},
			{
				Name:  "delete",
				Usage: "Delete a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.PlaylistDelete,
			},
			{
				Name:  "export",
				Usage: "Export playlists to local files",
				Arguments: []cli.Argument{
					&cli.StringArgs{
						Name: "ids",
						Max:  -1,
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "mine",
						Usage: "Export every playlist owned by the logged-in teacher",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (json, csv, markdown, txt)",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
						Value:   "./exports",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent export workers (max 10)",
						Value: 4,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Playlist fetches per second",
						Value: 2,
					},
					&cli.BoolFlag{
						Name:  "covers",
						Usage: "Download cover images alongside markdown exports",
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// videoCommand handles video operations within playlists
func videoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "video",
		Usage: "Video operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the videos in a playlist",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.VideoList,
			},
			{
				Name:  "add",
				Usage: "Upload a video to a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "playlist-id",
						Usage:    "Playlist to add the video to",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Video title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Video description",
					},
					&cli.StringFlag{
						Name:     "video",
						Usage:    "Path to the video file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "thumbnail",
						Usage: "Path to a thumbnail image",
					},
				},
				Action: r.VideoAdd,
			},
			{
				Name:  "update",
				Usage: "Update a video's title or description",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "New title",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "New description",
					},
				},
				Action: r.VideoUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a video",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.VideoDelete,
			},
		},
	}
}

// cacheCommand handles opt-in local playlist caching
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Cache playlists locally",
		Commands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Fetch a playlist and store it in the local database",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.CacheSave,
			},
			{
				Name:  "list",
				Usage: "List locally cached playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheList,
			},
			{
				Name:  "show",
				Usage: "Show a cached playlist with its videos",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CacheShow,
			},
			{
				Name:  "delete",
				Usage: "Remove a playlist from the local cache",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.CacheDelete,
			},
		},
	}
}

// refreshCommand reloads the profile and playlist collections in one pass
func refreshCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "refresh",
		Usage:  "Reload profile, owned playlists, and the catalog",
		Action: r.Refresh,
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing playlists and videos",
		Action:  r.TUI,
	}
}
