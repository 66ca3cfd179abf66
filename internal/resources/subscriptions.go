package resources

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// SubscriptionService wraps the subscriptions endpoints. The collection
// holds the channels in the last listing, keyed by channel id.
type SubscriptionService struct {
	client *api.Client
	coll   *Collection[models.Channel]
	logger *log.Logger
}

// NewSubscriptionService creates a SubscriptionService with an empty
// collection.
func NewSubscriptionService(client *api.Client, logger *log.Logger) *SubscriptionService {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &SubscriptionService{
		client: client,
		coll:   NewCollection(func(c models.Channel) string { return c.ID }),
		logger: logger,
	}
}

// Collection exposes the channel collection for read access.
func (s *SubscriptionService) Collection() *Collection[models.Channel] {
	return s.coll
}

// Toggle subscribes to or unsubscribes from a channel. The tracked channel's
// subscription fields are patched in place when present.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID string) (*models.Channel, error) {
	s.coll.Begin()

	var channel models.Channel
	if err := s.client.Patch(ctx, "/api/v1/subscriptions/toggle-sub/"+channelID, nil, &channel); err != nil {
		s.coll.Fail(err)
		return nil, err
	}
	if channel.ID == "" {
		channel.ID = channelID
	}

	s.logger.Debug("subscription toggled", "channel", channel.ID, "subscribed", channel.IsSubscribed)
	s.coll.Patch(channel.ID, nil, func(c *models.Channel) {
		c.IsSubscribed = channel.IsSubscribed
		c.SubscriberCount = channel.SubscriberCount
	})
	return &channel, nil
}

// SubscribedChannels fetches the channels a user subscribes to and replaces
// the collection wholesale.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string) ([]models.Channel, error) {
	s.coll.Begin()

	var channels []models.Channel
	if err := s.client.Get(ctx, "/api/v1/subscriptions/subscribed-channels/"+subscriberID, &channels); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.ReplaceAll(channels)
	return channels, nil
}

// ChannelSubscribers fetches a channel's subscriber list and replaces the
// collection wholesale.
func (s *SubscriptionService) ChannelSubscribers(ctx context.Context, channelID string) ([]models.Channel, error) {
	s.coll.Begin()

	var channels []models.Channel
	if err := s.client.Get(ctx, "/api/v1/subscriptions/subscribers/"+channelID, &channels); err != nil {
		s.coll.Fail(err)
		return nil, err
	}

	s.coll.ReplaceAll(channels)
	return channels, nil
}
