package resources

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// TweetService wraps the tweets endpoints.
type TweetService struct {
	client *api.Client
	coll   *Collection[models.Tweet]
	logger *log.Logger
}

// NewTweetService creates a TweetService with an empty collection.
func NewTweetService(client *api.Client, logger *log.Logger) *TweetService {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &TweetService{
		client: client,
		coll:   NewCollection(func(t models.Tweet) string { return t.ID }),
		logger: logger,
	}
}

// Collection exposes the tweet collection for read access.
func (s *TweetService) Collection() *Collection[models.Tweet] {
	return s.coll
}

// Create posts a new tweet; the created tweet is prepended (newest-first).
func (s *TweetService) Create(ctx context.Context, content string) (*models.Tweet, error) {
	if content == "" {
		return nil, api.ValidationError("tweet content is required")
	}

	s.coll.Begin()

	var tweet models.Tweet
	payload := map[string]string{"content": content}
	if err := s.client.Post(ctx, "/api/v1/tweets/create-tweet", payload, &tweet); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.logger.Debug("tweet posted", "id", tweet.ID)
	s.coll.Prepend(tweet)
	return &tweet, nil
}

// ListAll fetches every tweet and replaces the collection wholesale.
func (s *TweetService) ListAll(ctx context.Context) ([]models.Tweet, error) {
	s.coll.Begin()

	var tweets []models.Tweet
	if err := s.client.Get(ctx, "/api/v1/tweets/", &tweets); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.ReplaceAll(tweets)
	return tweets, nil
}

// ListMine fetches the current user's tweets and replaces the collection.
func (s *TweetService) ListMine(ctx context.Context) ([]models.Tweet, error) {
	s.coll.Begin()

	var tweets []models.Tweet
	if err := s.client.Get(ctx, "/api/v1/tweets/get-tweet", &tweets); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.ReplaceAll(tweets)
	return tweets, nil
}

// Update edits a tweet's content; the result replaces the item by id.
func (s *TweetService) Update(ctx context.Context, tweetID, content string) (*models.Tweet, error) {
	if content == "" {
		return nil, api.ValidationError("tweet content is required")
	}

	s.coll.Begin()

	var tweet models.Tweet
	payload := map[string]string{"content": content}
	if err := s.client.Patch(ctx, "/api/v1/tweets/update-tweet/"+tweetID, payload, &tweet); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.Update(tweet)
	return &tweet, nil
}

// Delete removes a tweet by id.
func (s *TweetService) Delete(ctx context.Context, tweetID string) error {
	s.coll.Begin()

	if err := s.client.Delete(ctx, "/api/v1/tweets/delete-tweet/"+tweetID, nil); err != nil {
		s.coll.Fail(err)
		return err
	}

	s.coll.Remove(tweetID)
	return nil
}
