package models

import (
	"encoding/json"
	"fmt"
)

// Envelope is the uniform response wrapper the VideoTube API returns for
// every endpoint: { data, message, success }.
type Envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Success bool            `json:"success"`
}

// Unwrap decodes the envelope's data field into target.
func (e *Envelope) Unwrap(target any) error {
	if target == nil {
		return nil
	}
	if len(e.Data) == 0 {
		return fmt.Errorf("response envelope has no data")
	}
	if err := json.Unmarshal(e.Data, target); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// User represents the authenticated user's profile (the session identity).
type User struct {
	ID           string   `json:"_id"`
	Username     string   `json:"username"`
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Avatar       string   `json:"avatar"`
	CoverImage   string   `json:"coverImage"`
	WatchHistory []string `json:"watchHistory,omitempty"`
	CreatedAt    string   `json:"createdAt"`
}

// Video represents a published video.
type Video struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	VideoFile   string  `json:"videoFile"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"`
	Views       int     `json:"views"`
	IsPublished bool    `json:"isPublished"`
	OwnerID     string  `json:"owner"`
	CreatedAt   string  `json:"createdAt"`
}

// Comment represents a comment on a video.
type Comment struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	VideoID   string `json:"video"`
	OwnerID   string `json:"owner"`
	CreatedAt string `json:"createdAt"`
}

// Tweet represents a short text post.
type Tweet struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	OwnerID   string `json:"owner"`
	CreatedAt string `json:"createdAt"`
}

// LikeStatus represents the like state of a single subject (video, comment
// or tweet). Toggle responses patch these fields by id, never whole items.
type LikeStatus struct {
	SubjectID  string `json:"_id"`
	IsLiked    bool   `json:"isLiked"`
	TotalLikes int    `json:"totalLikes"`
}

// Channel represents another user's channel as seen by the current user.
type Channel struct {
	ID              string `json:"_id"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	Avatar          string `json:"avatar"`
	SubscriberCount int    `json:"subscriberCount"`
	IsSubscribed    bool   `json:"isSubscribed"`
}
