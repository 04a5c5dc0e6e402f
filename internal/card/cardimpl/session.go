package cardimpl

import (
	"context"
	"fmt"
	"sync"

	"github.com/orgball2608/social-video-feed/internal/card"
	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/internal/player"
	"github.com/orgball2608/social-video-feed/pkg/logger"
)

// playbackSession drives one card's playback lifecycle:
// Idle -> Loading -> Playing, Playing -> Errored on a playback error, and
// Errored -> Loading again on retry. Closed is terminal. At most one live
// player handle exists at a time; a new one always tears down the old one.
type playbackSession struct {
	post    *domain.Post
	loader  player.Loader
	factory player.Factory
	logger  logger.Logger
	origin  string

	mu     sync.Mutex
	state  domain.PlaybackState
	handle player.Handle
	err    error
}

func newPlaybackSession(post *domain.Post, loader player.Loader, factory player.Factory, log logger.Logger, origin string) *playbackSession {
	return &playbackSession{
		post:    post,
		loader:  loader,
		factory: factory,
		logger:  log.With("post_id", post.ID, "video_id", post.VideoID),
		origin:  origin,
		state:   domain.PlaybackIdle,
	}
}

func (s *playbackSession) Play(ctx context.Context) (string, error) {
	s.mu.Lock()
	switch s.state {
	case domain.PlaybackClosed:
		s.mu.Unlock()
		return "", card.ErrSessionClosed
	case domain.PlaybackLoading:
		s.mu.Unlock()
		return "", card.ErrPlaybackPending
	case domain.PlaybackPlaying:
		url := s.handle.URL()
		s.mu.Unlock()
		return url, nil
	}
	// Idle or Errored: the error flag is cleared before a fresh attempt.
	s.state = domain.PlaybackLoading
	s.err = nil
	s.mu.Unlock()

	if err := s.loader.EnsureLoaded(ctx); err != nil {
		s.fail(err)
		return "", err
	}

	// Destroy any prior instance before acquiring a new one.
	s.mu.Lock()
	if s.handle != nil {
		s.handle.Destroy()
		s.handle = nil
	}
	s.mu.Unlock()

	handle, err := s.factory.Create(ctx, player.Options{
		ContainerID:    fmt.Sprintf("youtube-player-%d", s.post.ID),
		VideoID:        s.post.VideoID,
		Autoplay:       true,
		Muted:          true,
		Controls:       true,
		ShowRelated:    false,
		ModestBranding: true,
		Origin:         s.origin,
	}, s.onPlaybackError)
	if err != nil {
		s.fail(err)
		return "", err
	}

	s.mu.Lock()
	if s.state == domain.PlaybackClosed {
		s.mu.Unlock()
		handle.Destroy()
		return "", card.ErrSessionClosed
	}
	s.handle = handle
	s.state = domain.PlaybackPlaying
	s.mu.Unlock()

	s.logger.Info("Playback started")
	return handle.URL(), nil
}

func (s *playbackSession) fail(err error) {
	s.mu.Lock()
	if s.state != domain.PlaybackClosed {
		s.state = domain.PlaybackErrored
		s.err = err
	}
	s.mu.Unlock()
}

// onPlaybackError is invoked by the live player instance when it reports a
// playback failure. The handle is destroyed exactly once.
func (s *playbackSession) onPlaybackError(err error) {
	s.mu.Lock()
	if s.state != domain.PlaybackPlaying {
		s.mu.Unlock()
		return
	}
	s.state = domain.PlaybackErrored
	s.err = err
	handle := s.handle
	s.handle = nil
	s.mu.Unlock()

	if handle != nil {
		handle.Destroy()
	}
	s.logger.Warn("Playback error", "error", err)
}

func (s *playbackSession) State() domain.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *playbackSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close releases any live player instance. Terminal and idempotent.
func (s *playbackSession) Close() {
	s.mu.Lock()
	if s.state == domain.PlaybackClosed {
		s.mu.Unlock()
		return
	}
	s.state = domain.PlaybackClosed
	handle := s.handle
	s.handle = nil
	s.mu.Unlock()

	if handle != nil {
		handle.Destroy()
	}
}
