package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/praslea/lectern/internal/models"
	"github.com/praslea/lectern/internal/services"
	"github.com/praslea/lectern/internal/shared"
	"github.com/praslea/lectern/internal/tasks"
	"github.com/urfave/cli/v3"
)

// PlaylistList fetches and prints the full playlist catalog.
func (r *Runner) PlaylistList(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("fetching playlist catalog")

	if err := r.playlists.FetchAll(ctx); err != nil {
		return err
	}

	all := r.playlists.State().All

	if cmd.Bool("json") {
		return r.writeJSON(all, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Catalog (%d playlists)", len(all)))
	for i, pl := range all {
		r.writePlain("%d. %s (%s) - %d videos\n", i+1, pl.Title, pl.ID, len(pl.Videos))
	}
	return nil
}

// PlaylistMine fetches and prints playlists owned by the logged-in teacher.
func (r *Runner) PlaylistMine(ctx context.Context, cmd *cli.Command) error {
	teacher, err := r.currentTeacher(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("fetching owned playlists", "teacher", teacher.ID)

	if err := r.playlists.FetchByTeacher(ctx, teacher.ID); err != nil {
		return err
	}

	mine := r.playlists.State().ByTeacher

	if cmd.Bool("json") {
		return r.writeJSON(mine, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("%s's playlists (%d)", teacher.Name, len(mine)))
	for i, pl := range mine {
		r.writePlain("%d. %s (%s) - %d videos\n", i+1, pl.Title, pl.ID, len(pl.Videos))
	}
	return nil
}

// PlaylistShow fetches and prints a single playlist with its videos.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist ID is required", shared.ErrMissingArgument)
	}

	r.logger.Info("fetching playlist", "id", playlistID)

	if err := r.playlists.FetchByID(ctx, playlistID); err != nil {
		return err
	}

	playlist := r.playlists.State().Current

	if cmd.Bool("json") {
		return r.writeJSON(playlist, cmd.Bool("pretty"))
	}

	r.writePlainHeader(playlist.Title)
	if playlist.Description != "" {
		r.writePlain("%s\n\n", playlist.Description)
	}
	for i, video := range playlist.Videos {
		r.writePlain("%d. %s (%s)\n", i+1, video.Title, video.ID)
		if video.Description != "" {
			r.writePlain("   %s\n", video.Description)
		}
	}
	return nil
}

// PlaylistCreate creates a new course playlist via the multipart course endpoint.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	form := services.CourseForm{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
	}

	if coverPath := cmd.String("cover"); coverPath != "" {
		data, err := shared.VerifyAndReadFile(coverPath)
		if err != nil {
			return err
		}
		form.CoverImage = &services.FilePart{Filename: filepath.Base(coverPath), Data: data}
	}

	r.logger.Info("creating course", "title", form.Title)

	if err := r.session.CreateCourse(ctx, form); err != nil {
		return err
	}

	r.writePlain("✓ Course created: %s\n", form.Title)
	r.writePlain("Run 'lectern playlist mine' to see the updated list.\n")
	return nil
}

// PlaylistDelete deletes a playlist from the dashboard.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist ID is required", shared.ErrMissingArgument)
	}

	r.logger.Info("deleting playlist", "id", playlistID)

	if err := r.playlists.Delete(ctx, playlistID); err != nil {
		return err
	}

	return r.writePlain("✓ Playlist deleted: %s\n", playlistID)
}

// PlaylistExport exports playlists to local files through the worker pool.
func (r *Runner) PlaylistExport(ctx context.Context, cmd *cli.Command) error {
	ids := cmd.StringArgs("ids")

	if cmd.Bool("mine") {
		teacher, err := r.currentTeacher(ctx)
		if err != nil {
			return err
		}
		if err := r.playlists.FetchByTeacher(ctx, teacher.ID); err != nil {
			return err
		}
		for _, pl := range r.playlists.State().ByTeacher {
			ids = append(ids, pl.ID)
		}
	}

	if len(ids) == 0 {
		return fmt.Errorf("%w: provide playlist IDs or --mine", shared.ErrMissingArgument)
	}

	opts := tasks.BulkExportOpts{
		Format:      cmd.String("format"),
		OutputDir:   cmd.String("output"),
		NumWorkers:  int(cmd.Int("workers")),
		RateLimit:   cmd.Float("rate"),
		CoverImages: cmd.Bool("covers"),
	}

	r.writePlain("Exporting %d playlists to %s...\n\n", len(ids), opts.OutputDir)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			switch update.Phase {
			case tasks.ExportPlaylists:
				r.writePlain("📦 %s\n", update.Message)
			case tasks.WriteManifest:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.BulkExport(ctx, progressCh, ids, opts)
	close(progressCh)

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Export Complete!")
	r.writePlain("Exported: %d/%d playlists\n", result.SuccessCount, result.TotalPlaylists)
	r.writePlain("Output: %s\n", result.OutputDirectory)

	if result.FailedCount > 0 {
		r.writePlain("\nFailed to export %d playlists:\n", result.FailedCount)
		for _, res := range result.Results {
			if res.Error != nil {
				r.writePlain("  - %s: %v\n", res.Title, res.Error)
			}
		}
	}

	return nil
}

// Refresh reloads the profile, owned playlists, and the catalog in one pass.
func (r *Runner) Refresh(ctx context.Context, cmd *cli.Command) error {
	r.writePlain("Refreshing dashboard state...\n\n")

	progressCh := make(chan tasks.ProgressUpdate, 10)
	go func() {
		for update := range progressCh {
			r.writePlain("📥 %s\n", update.Message)
		}
	}()

	result, err := r.engine.Refresh(ctx, progressCh)
	close(progressCh)

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Dashboard Refreshed")
	r.writePlain("Teacher: %s\n", result.Teacher.Name)
	r.writePlain("Owned playlists: %d\n", result.OwnedCount)
	r.writePlain("Catalog playlists: %d\n", result.CatalogCount)
	return nil
}

// currentTeacher returns the session's teacher, fetching the profile first
// when the session has not loaded one yet.
func (r *Runner) currentTeacher(ctx context.Context) (*models.Teacher, error) {
	if teacher := r.session.State().Teacher; teacher != nil {
		return teacher, nil
	}
	if err := r.session.Profile(ctx); err != nil {
		return nil, err
	}
	return r.session.State().Teacher, nil
}
