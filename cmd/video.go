package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/praslea/lectern/internal/services"
	"github.com/praslea/lectern/internal/shared"
	"github.com/urfave/cli/v3"
)

// VideoList fetches a playlist and prints its videos.
func (r *Runner) VideoList(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.StringArg("id")
	if playlistID == "" {
		return fmt.Errorf("%w: playlist ID is required", shared.ErrMissingArgument)
	}

	r.logger.Info("fetching playlist videos", "playlist", playlistID)

	if err := r.playlists.FetchByID(ctx, playlistID); err != nil {
		return err
	}

	playlist := r.playlists.State().Current

	if cmd.Bool("json") {
		return r.writeJSON(playlist.Videos, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Videos in '%s' (%d)", playlist.Title, len(playlist.Videos)))
	for i, video := range playlist.Videos {
		r.writePlain("%d. %s (%s)\n", i+1, video.Title, video.ID)
	}
	return nil
}

// VideoAdd uploads a video (and optional thumbnail) to a playlist.
func (r *Runner) VideoAdd(ctx context.Context, cmd *cli.Command) error {
	playlistID := cmd.String("playlist-id")

	videoPath := cmd.String("video")
	videoData, err := shared.VerifyAndReadFile(videoPath)
	if err != nil {
		return err
	}

	form := services.VideoForm{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Video:       &services.FilePart{Filename: filepath.Base(videoPath), Data: videoData},
	}

	if thumbPath := cmd.String("thumbnail"); thumbPath != "" {
		thumbData, err := shared.VerifyAndReadFile(thumbPath)
		if err != nil {
			return err
		}
		form.Thumbnail = &services.FilePart{Filename: filepath.Base(thumbPath), Data: thumbData}
	}

	r.logger.Info("uploading video", "playlist", playlistID, "title", form.Title)

	if err := r.videos.Add(ctx, playlistID, form); err != nil {
		return err
	}

	added := r.videos.State().Videos
	video := added[len(added)-1]
	r.writePlain("✓ Video uploaded: %s (%s)\n", video.Title, video.ID)
	return nil
}

// VideoUpdate changes a video's title or description.
func (r *Runner) VideoUpdate(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("id")
	if videoID == "" {
		return fmt.Errorf("%w: video ID is required", shared.ErrMissingArgument)
	}

	update := services.VideoUpdate{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
	}
	if update.Title == "" && update.Description == "" {
		return fmt.Errorf("%w: provide --title or --description", shared.ErrMissingArgument)
	}

	r.logger.Info("updating video", "id", videoID)

	if err := r.videos.Update(ctx, videoID, update); err != nil {
		return err
	}

	return r.writePlain("✓ Video updated: %s\n", videoID)
}

// VideoDelete removes a video from its playlist.
func (r *Runner) VideoDelete(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("id")
	if videoID == "" {
		return fmt.Errorf("%w: video ID is required", shared.ErrMissingArgument)
	}

	r.logger.Info("deleting video", "id", videoID)

	if err := r.videos.Delete(ctx, videoID); err != nil {
		return err
	}

	return r.writePlain("✓ Video deleted: %s\n", videoID)
}
