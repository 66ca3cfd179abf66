package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/formatter"
	"github.com/videotube/vtx/internal/resources"
	"github.com/videotube/vtx/internal/shared"
)

// VideosList prints the video catalog.
func (r *Runner) VideosList(ctx context.Context, cmd *cli.Command) error {
	videos, err := r.videos.ListAll(ctx)
	if err != nil {
		return err
	}

	if path := cmd.String("csv"); path != "" {
		written, err := formatter.WriteVideosCSV(videos, path)
		if err != nil {
			return err
		}
		return r.writePlain("✓ Catalog written to %s\n", written)
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, true)
	}

	return r.writePlain("%s", formatter.VideosToText(videos))
}

// VideosGet prints one video.
func (r *Runner) VideosGet(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	video, err := r.videos.Get(ctx, videoID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(video, true)
	}

	r.writePlain("%s\n", video.Title)
	r.writePlain("Duration: %s\n", shared.FormatDuration(video.Duration))
	r.writePlain("Views: %d\n", video.Views)
	if video.Description != "" {
		r.writePlain("%s\n", video.Description)
	}
	return nil
}

// VideosPublish uploads and publishes a new video.
func (r *Runner) VideosPublish(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	videoFile, closeVideo, err := openUpload("videoFile", cmd.String("file"))
	if err != nil {
		return err
	}
	defer closeVideo()

	thumbnail, closeThumb, err := openUpload("thumbnail", cmd.String("thumbnail"))
	if err != nil {
		return err
	}
	defer closeThumb()

	video, err := r.videos.Publish(ctx, resources.PublishInput{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		VideoFile:   *videoFile,
		Thumbnail:   *thumbnail,
	})
	if err != nil {
		return err
	}

	return r.writePlain("✓ Published '%s' (%s)\n", video.Title, video.ID)
}

// VideosUpdate patches a video's details.
func (r *Runner) VideosUpdate(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	in := resources.UpdateInput{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
	}

	if thumbPath := cmd.String("thumbnail"); thumbPath != "" {
		thumbnail, closeThumb, err := openUpload("thumbnail", thumbPath)
		if err != nil {
			return err
		}
		defer closeThumb()
		in.Thumbnail = thumbnail
	}

	video, err := r.videos.Update(ctx, videoID, in)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Updated '%s'\n", video.Title)
}

// VideosDelete removes a video.
func (r *Runner) VideosDelete(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if err := r.videos.Delete(ctx, videoID); err != nil {
		return err
	}
	return r.writePlain("✓ Deleted %s\n", videoID)
}

// VideosToggle flips a video's publish state.
func (r *Runner) VideosToggle(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	video, err := r.videos.TogglePublish(ctx, videoID)
	if err != nil {
		return err
	}

	state := "unpublished"
	if video.IsPublished {
		state = "published"
	}
	return r.writePlain("✓ Video is now %s\n", state)
}
