package card

import (
	"context"
	"errors"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

var (
	// ErrNotPlayable is returned when playback is requested for a post that
	// has no imperative player (everything except YouTube).
	ErrNotPlayable     = errors.New("post has no playable video")
	ErrSessionClosed   = errors.New("playback session is closed")
	ErrPlaybackPending = errors.New("playback is already starting")
)

// Card is the rendered, platform-appropriate representation of one post.
type Card struct {
	Text         string
	ThumbnailURL string
	EmbedMarkup  string
	LinkOut      bool
}

// Client decides how each post is rendered and drives the per-post playback
// lifecycle for YouTube posts.
type Client interface {
	// Render produces the card for a post and fires any platform-specific
	// post-render hook as a side effect.
	Render(post *domain.Post) *Card

	// Play starts (or retries) playback for a YouTube post and returns the
	// live player URL.
	Play(ctx context.Context, post *domain.Post) (string, error)

	// Stop tears down the post's playback session, releasing any live
	// player instance. Safe to call for posts that never played.
	Stop(postID int64)

	// State reports the playback state for a post's session.
	State(postID int64) domain.PlaybackState

	// CloseAll tears down every live session; used on shutdown.
	CloseAll()
}

// EmbedProcessor is the hosting environment hook that re-scans the document
// for freshly injected embeds. Invoked fire-and-forget after each render.
type EmbedProcessor interface {
	Process(platform domain.Platform)
}
