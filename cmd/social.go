package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/videotube/vtx/internal/formatter"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// CommentsList prints a video's comments.
func (r *Runner) CommentsList(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("video-id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	comments, err := r.comments.List(ctx, videoID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(comments, true)
	}

	if len(comments) == 0 {
		return r.writePlain("No comments\n")
	}
	for i, c := range comments {
		r.writePlain("%d. %s\n", i+1, c.Content)
	}
	return nil
}

// CommentsAdd comments on a video.
func (r *Runner) CommentsAdd(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("video-id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	comment, err := r.comments.Add(ctx, videoID, cmd.String("content"))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Comment added (%s)\n", comment.ID)
}

// CommentsUpdate edits a comment.
func (r *Runner) CommentsUpdate(ctx context.Context, cmd *cli.Command) error {
	commentID := cmd.StringArg("id")
	if commentID == "" {
		return fmt.Errorf("%w: comment id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if _, err := r.comments.Update(ctx, commentID, cmd.String("content")); err != nil {
		return err
	}
	return r.writePlain("✓ Comment updated\n")
}

// CommentsDelete removes a comment.
func (r *Runner) CommentsDelete(ctx context.Context, cmd *cli.Command) error {
	commentID := cmd.StringArg("id")
	if commentID == "" {
		return fmt.Errorf("%w: comment id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if err := r.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	return r.writePlain("✓ Comment deleted\n")
}

// TweetsCreate posts a tweet.
func (r *Runner) TweetsCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	tweet, err := r.tweets.Create(ctx, cmd.String("content"))
	if err != nil {
		return err
	}
	return r.writePlain("✓ Tweet posted (%s)\n", tweet.ID)
}

// TweetsList prints all tweets, or only the signed-in account's.
func (r *Runner) TweetsList(ctx context.Context, cmd *cli.Command) error {
	var err error
	var tweets []models.Tweet

	if cmd.Bool("mine") {
		if err := r.requireAuth(ctx); err != nil {
			return err
		}
		tweets, err = r.tweets.ListMine(ctx)
	} else {
		tweets, err = r.tweets.ListAll(ctx)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(tweets, true)
	}
	return r.writePlain("%s", formatter.TweetsToText(tweets))
}

// TweetsUpdate edits a tweet.
func (r *Runner) TweetsUpdate(ctx context.Context, cmd *cli.Command) error {
	tweetID := cmd.StringArg("id")
	if tweetID == "" {
		return fmt.Errorf("%w: tweet id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if _, err := r.tweets.Update(ctx, tweetID, cmd.String("content")); err != nil {
		return err
	}
	return r.writePlain("✓ Tweet updated\n")
}

// TweetsDelete removes a tweet.
func (r *Runner) TweetsDelete(ctx context.Context, cmd *cli.Command) error {
	tweetID := cmd.StringArg("id")
	if tweetID == "" {
		return fmt.Errorf("%w: tweet id", shared.ErrMissingArgument)
	}
	if err := r.requireAuth(ctx); err != nil {
		return err
	}

	if err := r.tweets.Delete(ctx, tweetID); err != nil {
		return err
	}
	return r.writePlain("✓ Tweet deleted\n")
}
