package resources

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// LikeService tracks per-subject like state. The collection is keyed by the
// liked subject's id, so a toggle on a subject not yet tracked inserts its
// status instead of replacing an item.
type LikeService struct {
	client *api.Client
	coll   *Collection[models.LikeStatus]
	logger *log.Logger
}

// NewLikeService creates a LikeService with an empty collection.
func NewLikeService(client *api.Client, logger *log.Logger) *LikeService {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &LikeService{
		client: client,
		coll:   NewCollection(func(l models.LikeStatus) string { return l.SubjectID }),
		logger: logger,
	}
}

// Collection exposes the like-state collection for read access.
func (s *LikeService) Collection() *Collection[models.LikeStatus] {
	return s.coll
}

// ToggleVideo flips the like state of a video.
func (s *LikeService) ToggleVideo(ctx context.Context, videoID string) (*models.LikeStatus, error) {
	return s.toggle(ctx, "/api/v1/likes/toggle-video/"+videoID, videoID)
}

// ToggleComment flips the like state of a comment.
func (s *LikeService) ToggleComment(ctx context.Context, commentID string) (*models.LikeStatus, error) {
	return s.toggle(ctx, "/api/v1/likes/toggle-comment/"+commentID, commentID)
}

// ToggleTweet flips the like state of a tweet.
func (s *LikeService) ToggleTweet(ctx context.Context, tweetID string) (*models.LikeStatus, error) {
	return s.toggle(ctx, "/api/v1/likes/toggle-tweet/"+tweetID, tweetID)
}

func (s *LikeService) toggle(ctx context.Context, path, subjectID string) (*models.LikeStatus, error) {
	s.coll.Begin()

	var status models.LikeStatus
	if err := s.client.Patch(ctx, path, nil, &status); err != nil {
		s.coll.Fail(err)
		return nil, err
	}
	if status.SubjectID == "" {
		status.SubjectID = subjectID
	}

	s.logger.Debug("like toggled", "subject", status.SubjectID, "liked", status.IsLiked)
	s.coll.Patch(status.SubjectID,
		func() models.LikeStatus { return status },
		func(l *models.LikeStatus) { *l = status })
	return &status, nil
}

// LikedVideos fetches the videos the current user has liked. The result
// does not touch the like-state collection; callers render it directly.
func (s *LikeService) LikedVideos(ctx context.Context) ([]models.Video, error) {
	s.coll.Begin()

	var videos []models.Video
	if err := s.client.Get(ctx, "/api/v1/likes/like-videos", &videos); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	statuses := make([]models.LikeStatus, 0, len(videos))
	for _, v := range videos {
		statuses = append(statuses, models.LikeStatus{SubjectID: v.ID, IsLiked: true})
	}
	s.coll.ReplaceAll(statuses)
	return videos, nil
}
