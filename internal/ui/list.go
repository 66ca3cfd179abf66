package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

var (
	_ list.Item = videoItem{}
	_ list.Item = channelItem{}
)

// videoItem wraps [models.Video] to implement [list.Item].
type videoItem struct {
	video models.Video
}

func (i videoItem) FilterValue() string { return i.video.Title }
func (i videoItem) Title() string       { return i.video.Title }
func (i videoItem) Description() string {
	desc := fmt.Sprintf("%s • %d views", shared.FormatDuration(i.video.Duration), i.video.Views)
	if i.video.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.video.Description)
	}
	return desc
}

// channelItem wraps [models.Channel] to implement [list.Item].
type channelItem struct {
	channel models.Channel
}

func (i channelItem) FilterValue() string { return i.channel.Username }
func (i channelItem) Title() string       { return "@" + i.channel.Username }
func (i channelItem) Description() string {
	desc := fmt.Sprintf("%d subscribers", i.channel.SubscriberCount)
	if i.channel.IsSubscribed {
		desc = fmt.Sprintf("%s • subscribed", desc)
	}
	return desc
}
