package formatter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/videotube/vtx/internal/models"
	tu "github.com/videotube/vtx/internal/testing"
)

func TestFormatter(t *testing.T) {
	videos := []models.Video{
		{ID: "v1", Title: "First", Duration: 125, Views: 42, IsPublished: true},
		{ID: "v2", Title: "Second", Duration: 59, Views: 7, IsPublished: false},
	}

	t.Run("VideosToCSV", func(t *testing.T) {
		data, err := VideosToCSV(videos)
		if err != nil {
			t.Fatalf("failed to generate CSV: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus two rows, got %d lines", len(lines))
		}
		if lines[0] != "ID,Title,Duration,Views,Published" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if lines[1] != "v1,First,2:05,42,true" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if lines[2] != "v2,Second,0:59,7,false" {
			t.Errorf("unexpected second row: %s", lines[2])
		}
	})

	t.Run("VideosToText", func(t *testing.T) {
		text := string(VideosToText(videos))

		if !strings.HasPrefix(text, "Videos: 2") {
			t.Errorf("expected count header, got %q", text)
		}
		if !strings.Contains(text, "1. First [2:05] (42 views)") {
			t.Errorf("expected numbered entry, got %q", text)
		}
	})

	t.Run("TweetsToText", func(t *testing.T) {
		tweets := []models.Tweet{{ID: "t1", Content: "hello"}, {ID: "t2", Content: "again"}}
		text := string(TweetsToText(tweets))

		if !strings.HasPrefix(text, "Tweets: 2") {
			t.Errorf("expected count header, got %q", text)
		}
		if !strings.Contains(text, "2. again") {
			t.Errorf("expected numbered entries, got %q", text)
		}
	})

	t.Run("ChannelsToText", func(t *testing.T) {
		channels := []models.Channel{
			{ID: "c1", Username: "alice", SubscriberCount: 10, IsSubscribed: true},
			{ID: "c2", Username: "bob", SubscriberCount: 3, IsSubscribed: false},
		}
		text := string(ChannelsToText(channels))

		if !strings.Contains(text, "1. * alice (10 subscribers)") {
			t.Errorf("expected subscribed marker, got %q", text)
		}
		if !strings.Contains(text, "2.   bob (3 subscribers)") {
			t.Errorf("expected blank marker for unsubscribed, got %q", text)
		}
	})

	t.Run("ProfileToMarkdown", func(t *testing.T) {
		user := models.User{Username: "alice", Email: "alice@example.com", FullName: "Alice A", Avatar: "http://cdn/avatar.png"}
		md := string(ProfileToMarkdown(user))

		if !strings.HasPrefix(md, "# Alice A") {
			t.Errorf("expected full name heading, got %q", md)
		}
		if !strings.Contains(md, "**Username**: @alice") {
			t.Errorf("expected username line, got %q", md)
		}
		if !strings.Contains(md, "![Avatar](http://cdn/avatar.png)") {
			t.Errorf("expected avatar image, got %q", md)
		}

		plain := string(ProfileToMarkdown(models.User{Username: "bob", FullName: "Bob"}))
		if strings.Contains(plain, "![Avatar]") {
			t.Error("expected no avatar image when avatar is empty")
		}
	})

	t.Run("ToJSON", func(t *testing.T) {
		data, err := ToJSON(videos[0])
		if err != nil {
			t.Fatalf("failed to generate JSON: %v", err)
		}
		if !strings.Contains(string(data), "\"title\": \"First\"") {
			t.Errorf("expected indented JSON, got %s", data)
		}
	})

	t.Run("WriteVideosCSV", func(t *testing.T) {
		t.Run("Writes To Given Path", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "export.csv")

			written, err := WriteVideosCSV(videos, path)
			if err != nil {
				t.Fatalf("failed to write CSV: %v", err)
			}
			if written != path {
				t.Errorf("expected path %s, got %s", path, written)
			}

			tu.AssertFileExists(t, path)
			content := tu.MustReadFile(t, path)
			if !strings.HasPrefix(content, "ID,Title,Duration,Views,Published") {
				t.Errorf("expected CSV header in file, got %q", content)
			}
		})

		t.Run("Defaults Filename", func(t *testing.T) {
			wd := tu.MustGetwd(t)
			tu.MustChdir(t, t.TempDir())
			defer tu.MustChdir(t, wd)

			written, err := WriteVideosCSV(videos, "")
			if err != nil {
				t.Fatalf("failed to write CSV: %v", err)
			}
			if written != "videos.csv" {
				t.Errorf("expected default filename videos.csv, got %s", written)
			}
			tu.AssertFileExists(t, "videos.csv")
		})
	})
}
