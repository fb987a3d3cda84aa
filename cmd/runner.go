package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/praslea/lectern/internal/api"
	"github.com/praslea/lectern/internal/services"
	"github.com/praslea/lectern/internal/shared"
	"github.com/praslea/lectern/internal/store"
	"github.com/praslea/lectern/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	client     *api.Client
	session    *store.Session
	playlists  *store.Playlists
	videos     *store.Videos
	uploads    *services.UploadService
	cache      *store.Cache
	engine     *tasks.DashboardEngine
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Client     *api.Client
	Teachers   services.TeacherAPI
	Playlists  services.PlaylistAPI
	Videos     services.VideoAPI
	Uploads    *services.UploadService
	Tokens     store.TokenStore
	Cache      *store.Cache
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	session := store.NewSession(opts.Teachers, opts.Client, opts.Tokens, opts.Logger)
	playlists := store.NewPlaylists(opts.Playlists)
	videos := store.NewVideos(opts.Videos)
	engine := tasks.NewDashboardEngine(session, playlists, opts.Playlists)

	return &Runner{
		config:     opts.Config,
		client:     opts.Client,
		session:    session,
		playlists:  playlists,
		videos:     videos,
		uploads:    opts.Uploads,
		cache:      opts.Cache,
		engine:     engine,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, playlistCommand, videoCommand, cacheCommand, refreshCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// requireCache guards commands that need the local database.
func (r *Runner) requireCache() error {
	if r.cache == nil {
		return fmt.Errorf("%w: local database not initialized, run 'lectern setup' first", shared.ErrServiceUnavailable)
	}
	return nil
}
