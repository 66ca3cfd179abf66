package resources

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// VideoService wraps the videos endpoints and reconciles results into its
// collection.
type VideoService struct {
	client *api.Client
	coll   *Collection[models.Video]
	logger *log.Logger
}

// NewVideoService creates a VideoService with an empty collection.
func NewVideoService(client *api.Client, logger *log.Logger) *VideoService {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &VideoService{
		client: client,
		coll:   NewCollection(func(v models.Video) string { return v.ID }),
		logger: logger,
	}
}

// Collection exposes the video collection for read access.
func (s *VideoService) Collection() *Collection[models.Video] {
	return s.coll
}

// ListAll fetches the catalog and replaces the collection wholesale.
func (s *VideoService) ListAll(ctx context.Context) ([]models.Video, error) {
	s.coll.Begin()

	var videos []models.Video
	if err := s.client.Get(ctx, "/api/v1/videos/all-videos", &videos); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.ReplaceAll(videos)
	return videos, nil
}

// Get fetches a single video by id and updates it in place if present.
func (s *VideoService) Get(ctx context.Context, videoID string) (*models.Video, error) {
	s.coll.Begin()

	var video models.Video
	if err := s.client.Get(ctx, "/api/v1/videos/get-video/"+videoID, &video); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.Patch(video.ID, func() models.Video { return video }, func(v *models.Video) { *v = video })
	return &video, nil
}

// PublishInput carries the upload form for a new video.
type PublishInput struct {
	Title       string
	Description string
	VideoFile   api.FileUpload
	Thumbnail   api.FileUpload
}

// Publish uploads a new video; the created video is prepended (newest-first).
func (s *VideoService) Publish(ctx context.Context, in PublishInput) (*models.Video, error) {
	if in.Title == "" {
		return nil, api.ValidationError("title is required")
	}

	s.coll.Begin()

	fields := map[string]string{
		"title":       in.Title,
		"description": in.Description,
	}
	files := []api.FileUpload{in.VideoFile, in.Thumbnail}

	var video models.Video
	if err := s.client.PostMultipart(ctx, "/api/v1/videos/upload-video", fields, files, &video); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.logger.Info("video published", "id", video.ID, "title", video.Title)
	s.coll.Prepend(video)
	return &video, nil
}

// UpdateInput carries the editable video fields; the thumbnail is optional.
type UpdateInput struct {
	Title       string
	Description string
	Thumbnail   *api.FileUpload
}

// Update patches a video's details; the result replaces the item by id.
func (s *VideoService) Update(ctx context.Context, videoID string, in UpdateInput) (*models.Video, error) {
	s.coll.Begin()

	fields := map[string]string{}
	if in.Title != "" {
		fields["title"] = in.Title
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	var files []api.FileUpload
	if in.Thumbnail != nil {
		files = append(files, *in.Thumbnail)
	}

	var video models.Video
	if err := s.client.PatchMultipart(ctx, "/api/v1/videos/update-video/"+videoID, fields, files, &video); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.Update(video)
	return &video, nil
}

// Delete removes a video by id.
func (s *VideoService) Delete(ctx context.Context, videoID string) error {
	s.coll.Begin()

	if err := s.client.Delete(ctx, "/api/v1/videos/delete-video/"+videoID, nil); err != nil {
		s.coll.Fail(err)
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	s.coll.Remove(videoID)
	return nil
}

// TogglePublish flips a video's publish state; only that field is patched.
func (s *VideoService) TogglePublish(ctx context.Context, videoID string) (*models.Video, error) {
	s.coll.Begin()

	var video models.Video
	if err := s.client.Patch(ctx, "/api/v1/videos/toggle-video/"+videoID, nil, &video); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.Patch(videoID, nil, func(v *models.Video) {
		v.IsPublished = video.IsPublished
	})
	return &video, nil
}
