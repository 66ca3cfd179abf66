package resources

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// CommentService wraps the comments endpoints for one video page at a time.
type CommentService struct {
	client *api.Client
	coll   *Collection[models.Comment]
	logger *log.Logger
}

// NewCommentService creates a CommentService with an empty collection.
func NewCommentService(client *api.Client, logger *log.Logger) *CommentService {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &CommentService{
		client: client,
		coll:   NewCollection(func(c models.Comment) string { return c.ID }),
		logger: logger,
	}
}

// Collection exposes the comment collection for read access.
func (s *CommentService) Collection() *Collection[models.Comment] {
	return s.coll
}

// List fetches a video's comments and replaces the collection wholesale.
func (s *CommentService) List(ctx context.Context, videoID string) ([]models.Comment, error) {
	s.coll.Begin()

	var comments []models.Comment
	if err := s.client.Get(ctx, "/api/v1/comments/get-comments/"+videoID, &comments); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.ReplaceAll(comments)
	return comments, nil
}

// Add creates a comment on a video; the new comment is prepended.
func (s *CommentService) Add(ctx context.Context, videoID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, api.ValidationError("comment content is required")
	}

	s.coll.Begin()

	var comment models.Comment
	payload := map[string]string{"content": content}
	if err := s.client.Post(ctx, "/api/v1/comments/add-comment/"+videoID, payload, &comment); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.logger.Debug("comment added", "video", videoID, "id", comment.ID)
	s.coll.Prepend(comment)
	return &comment, nil
}

// Update edits a comment's content; the result replaces the item by id.
func (s *CommentService) Update(ctx context.Context, commentID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, api.ValidationError("comment content is required")
	}

	s.coll.Begin()

	var comment models.Comment
	payload := map[string]string{"content": content}
	if err := s.client.Patch(ctx, "/api/v1/comments/update-comment/"+commentID, payload, &comment); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.Update(comment)
	return &comment, nil
}

// Delete removes a comment by id.
func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	s.coll.Begin()

	if err := s.client.Delete(ctx, "/api/v1/comments/delete-comment/"+commentID, nil); err != nil {
		s.coll.Fail(err)
		return err
	}

	s.coll.Remove(commentID)
	return nil
}
