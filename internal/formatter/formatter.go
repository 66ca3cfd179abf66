// package formatter provides functions to export feed data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// VideosToCSV converts videos to CSV format with columns: ID, Title, Duration, Views, Published
func VideosToCSV(videos []models.Video) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Duration", "Views", "Published"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, video := range videos {
		record := []string{
			video.ID,
			video.Title,
			shared.FormatDuration(video.Duration),
			strconv.Itoa(video.Views),
			strconv.FormatBool(video.IsPublished),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// VideosToText converts videos to plain text format
func VideosToText(videos []models.Video) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Videos: %d\n\n", len(videos)))
	for i, video := range videos {
		buf.WriteString(fmt.Sprintf("%d. %s [%s] (%d views)\n", i+1, video.Title, shared.FormatDuration(video.Duration), video.Views))
	}

	return buf.Bytes()
}

// TweetsToText converts tweets to plain text format
func TweetsToText(tweets []models.Tweet) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Tweets: %d\n\n", len(tweets)))
	for i, tweet := range tweets {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, tweet.Content))
	}

	return buf.Bytes()
}

// ChannelsToText converts channels to plain text format
func ChannelsToText(channels []models.Channel) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Channels: %d\n\n", len(channels)))
	for i, channel := range channels {
		marker := " "
		if channel.IsSubscribed {
			marker = "*"
		}
		buf.WriteString(fmt.Sprintf("%d. %s %s (%d subscribers)\n", i+1, marker, channel.Username, channel.SubscriberCount))
	}

	return buf.Bytes()
}

// ProfileToMarkdown converts a user profile to Markdown format
func ProfileToMarkdown(user models.User) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", user.FullName))
	buf.WriteString(fmt.Sprintf("**Username**: @%s\n", user.Username))
	buf.WriteString(fmt.Sprintf("**Email**: %s\n", user.Email))
	if user.Avatar != "" {
		buf.WriteString(fmt.Sprintf("\n![Avatar](%s)\n", user.Avatar))
	}

	return buf.Bytes()
}

// ToJSON generates an indented JSON representation of any exportable value
func ToJSON(v any) ([]byte, error) {
	return shared.MarshalJSON(v, true)
}

// WriteVideosCSV exports videos to a CSV file.
//
// Defaults to videos.csv as the filename.
func WriteVideosCSV(videos []models.Video, filepath string) (string, error) {
	if filepath == "" {
		filepath = "videos.csv"
	}

	csvData, err := VideosToCSV(videos)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}
