package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/formatter"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

func (r *Runner) reportToggle(status *models.LikeStatus) error {
	if status.IsLiked {
		return r.writePlain("✓ Liked (%d total)\n", status.TotalLikes)
	}
	return r.writePlain("✓ Like removed (%d total)\n", status.TotalLikes)
}

// LikesVideo toggles a like on a video.
func (r *Runner) LikesVideo(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	status, err := r.likes.ToggleVideo(ctx, videoID)
	if err != nil {
		return err
	}
	return r.reportToggle(status)
}

// LikesComment toggles a like on a comment.
func (r *Runner) LikesComment(ctx context.Context, cmd *cli.Command) error {
	commentID := cmd.StringArg("id")
	if commentID == "" {
		return fmt.Errorf("%w: comment id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	status, err := r.likes.ToggleComment(ctx, commentID)
	if err != nil {
		return err
	}
	return r.reportToggle(status)
}

// LikesTweet toggles a like on a tweet.
func (r *Runner) LikesTweet(ctx context.Context, cmd *cli.Command) error {
	tweetID := cmd.StringArg("id")
	if tweetID == "" {
		return fmt.Errorf("%w: tweet id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	status, err := r.likes.ToggleTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	return r.reportToggle(status)
}

// LikesVideos lists the videos the signed-in account has liked.
func (r *Runner) LikesVideos(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	videos, err := r.likes.LikedVideos(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(videos, true)
	}
	return r.writePlain("%s", formatter.VideosToText(videos))
}

// SubsToggle subscribes to or unsubscribes from a channel.
func (r *Runner) SubsToggle(ctx context.Context, cmd *cli.Command) error {
	channelID := cmd.StringArg("channel-id")
	if channelID == "" {
		return fmt.Errorf("%w: channel id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	channel, err := r.subs.Toggle(ctx, channelID)
	if err != nil {
		return err
	}

	if channel.IsSubscribed {
		return r.writePlain("✓ Subscribed\n")
	}
	return r.writePlain("✓ Unsubscribed\n")
}

// SubsChannels lists the channels the signed-in account subscribes to.
func (r *Runner) SubsChannels(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	subscriberID := r.svc.Store().State().Identity.ID
	channels, err := r.subs.SubscribedChannels(ctx, subscriberID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(channels, true)
	}
	return r.writePlain("%s", formatter.ChannelsToText(channels))
}

// SubsSubscribers lists a channel's subscribers.
func (r *Runner) SubsSubscribers(ctx context.Context, cmd *cli.Command) error {
	channelID := cmd.StringArg("channel-id")
	if channelID == "" {
		return fmt.Errorf("%w: channel id", shared.ErrMissingArgument)
	}

	channels, err := r.subs.ChannelSubscribers(ctx, channelID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(channels, true)
	}
	return r.writePlain("%s", formatter.ChannelsToText(channels))
}
