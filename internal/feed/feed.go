package feed

import (
	"context"
	"errors"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

var (
	// ErrEmptyURL is reported before classification is even attempted.
	ErrEmptyURL = errors.New("video url is required")
	ErrNotFound = errors.New("post not found")
)

// Store holds each chat's in-session feed, newest first. Nothing is
// persisted; the feed lives exactly as long as the process.
type Store interface {
	// AddPost classifies the URL and prepends a new post to the chat's feed.
	// The outcome is applied after the configured submission delay.
	AddPost(ctx context.Context, chatID int64, videoURL, caption, hashtag string) (*domain.Post, error)

	// LikePost increments the like count of the matching post by exactly 1
	// and returns the new count. The feed order is unchanged; a missing id
	// leaves the store untouched.
	LikePost(chatID int64, postID int64) (int, error)

	// ListPosts returns a snapshot of the chat's feed, newest first.
	ListPosts(chatID int64) []*domain.Post

	// GetPost returns a snapshot of a single post.
	GetPost(chatID int64, postID int64) (*domain.Post, error)
}
