package resources

import (
	"testing"

	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
)

func newVideoCollection() *Collection[models.Video] {
	return NewCollection(func(v models.Video) string { return v.ID })
}

func TestCollection(t *testing.T) {
	t.Run("Begin", func(t *testing.T) {
		c := newVideoCollection()
		c.Fail(&api.Error{Kind: api.KindServer, Message: "boom", Status: 500})
		c.Begin()

		if !c.Loading() {
			t.Error("expected loading during an operation")
		}
		if c.Err() != nil {
			t.Error("expected previous error cleared at operation start")
		}
	})

	t.Run("Fail Leaves Items Untouched", func(t *testing.T) {
		c := newVideoCollection()
		c.ReplaceAll([]models.Video{{ID: "v1"}, {ID: "v2"}})

		c.Begin()
		c.Fail(&api.Error{Kind: api.KindNetwork, Message: "network error"})

		if c.Loading() {
			t.Error("expected loading cleared on failure")
		}
		if c.Err() == nil {
			t.Error("expected failure recorded")
		}
		if c.Len() != 2 {
			t.Errorf("expected items preserved, got %d", c.Len())
		}
	})

	t.Run("ReplaceAll", func(t *testing.T) {
		c := newVideoCollection()
		c.ReplaceAll([]models.Video{{ID: "v1"}})
		c.ReplaceAll([]models.Video{{ID: "v2"}, {ID: "v3"}})

		items := c.Items()
		if len(items) != 2 || items[0].ID != "v2" {
			t.Errorf("expected wholesale replacement, got %v", items)
		}
	})

	t.Run("Prepend Puts Newest First", func(t *testing.T) {
		c := newVideoCollection()
		c.ReplaceAll([]models.Video{{ID: "old"}})
		c.Prepend(models.Video{ID: "new"})

		items := c.Items()
		if items[0].ID != "new" || items[1].ID != "old" {
			t.Errorf("expected newest-first order, got %v", items)
		}
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("Replaces In Place", func(t *testing.T) {
			c := newVideoCollection()
			c.ReplaceAll([]models.Video{{ID: "v1", Title: "a"}, {ID: "v2", Title: "b"}})

			c.Update(models.Video{ID: "v1", Title: "a2"})

			items := c.Items()
			if items[0].ID != "v1" || items[0].Title != "a2" {
				t.Errorf("expected v1 replaced in place, got %v", items)
			}
			if items[1].Title != "b" {
				t.Error("expected other items untouched")
			}
		})

		t.Run("Replay Is Idempotent", func(t *testing.T) {
			c := newVideoCollection()
			c.ReplaceAll([]models.Video{{ID: "v1", Title: "a"}})

			c.Update(models.Video{ID: "v1", Title: "a2"})
			c.Update(models.Video{ID: "v1", Title: "a2"})

			items := c.Items()
			if len(items) != 1 || items[0].Title != "a2" {
				t.Errorf("expected a single unchanged item, got %v", items)
			}
		})

		t.Run("Unknown ID Is A No-Op", func(t *testing.T) {
			c := newVideoCollection()
			c.ReplaceAll([]models.Video{{ID: "v1"}})
			c.Update(models.Video{ID: "ghost"})

			if c.Len() != 1 {
				t.Errorf("expected no insertion for unknown id, got %d items", c.Len())
			}
		})
	})

	t.Run("Remove", func(t *testing.T) {
		c := newVideoCollection()
		c.ReplaceAll([]models.Video{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}})
		c.Remove("v2")

		items := c.Items()
		if len(items) != 2 || items[0].ID != "v1" || items[1].ID != "v3" {
			t.Errorf("expected v2 removed with order preserved, got %v", items)
		}
	})

	t.Run("Patch", func(t *testing.T) {
		t.Run("Mutates Fields In Place", func(t *testing.T) {
			c := newVideoCollection()
			c.ReplaceAll([]models.Video{{ID: "v1", Title: "a", IsPublished: false}})

			c.Patch("v1", nil, func(v *models.Video) { v.IsPublished = true })

			got, _ := c.Get("v1")
			if !got.IsPublished || got.Title != "a" {
				t.Errorf("expected only the patched field to change, got %+v", got)
			}
		})

		t.Run("Inserts When Absent", func(t *testing.T) {
			c := newVideoCollection()
			c.Patch("v9", func() models.Video { return models.Video{ID: "v9"} }, func(v *models.Video) {})

			if _, ok := c.Get("v9"); !ok {
				t.Error("expected the item to be inserted")
			}
		})
	})

	t.Run("Out Of Order Settlement", func(t *testing.T) {
		// two overlapping list fetches: the slower, older response settles
		// last and wins, which is the defined completion-order semantics
		c := newVideoCollection()
		c.Begin()
		c.Begin()
		c.ReplaceAll([]models.Video{{ID: "newer"}})
		c.ReplaceAll([]models.Video{{ID: "older"}})

		items := c.Items()
		if len(items) != 1 || items[0].ID != "older" {
			t.Errorf("expected last settlement to win, got %v", items)
		}
		if c.Loading() {
			t.Error("expected loading cleared once settled")
		}
	})

	t.Run("Close Drops Late Settlements", func(t *testing.T) {
		c := newVideoCollection()
		c.ReplaceAll([]models.Video{{ID: "v1"}})
		c.Begin()
		c.Close()

		c.ReplaceAll([]models.Video{{ID: "late"}})
		c.Fail(&api.Error{Kind: api.KindServer, Message: "late failure"})

		items := c.Items()
		if len(items) != 1 || items[0].ID != "v1" {
			t.Errorf("expected late settlement dropped, got %v", items)
		}
		if c.Err() != nil {
			t.Error("expected late failure dropped")
		}
		if c.Loading() {
			t.Error("expected loading cleared on close")
		}
	})
}
