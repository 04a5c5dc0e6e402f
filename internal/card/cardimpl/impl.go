package cardimpl

import (
	"context"
	"fmt"
	"sync"

	"github.com/orgball2608/social-video-feed/internal/card"
	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/internal/player"
	"github.com/orgball2608/social-video-feed/pkg/config"
	"github.com/orgball2608/social-video-feed/pkg/formatter"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Loader    player.Loader
	Factory   player.Factory
	Processor card.EmbedProcessor
	Logger    logger.Logger
	Config    *config.Config
}

type CardImpl struct {
	Loader    player.Loader
	Factory   player.Factory
	Processor card.EmbedProcessor
	Logger    logger.Logger
	Config    *config.Config

	mu       sync.Mutex
	sessions map[int64]*playbackSession
}

func New(opts Opts) *CardImpl {
	return &CardImpl{
		Loader:    opts.Loader,
		Factory:   opts.Factory,
		Processor: opts.Processor,
		Logger:    opts.Logger.WithComponent("CardRenderer"),
		Config:    opts.Config,
		sessions:  make(map[int64]*playbackSession),
	}
}

var _ card.Client = (*CardImpl)(nil)

func (c *CardImpl) Render(post *domain.Post) *card.Card {
	rendered := &card.Card{
		Text: c.cardText(post),
	}

	switch {
	case !post.IsEmbeddable:
		rendered.LinkOut = true
	case post.Platform == domain.PlatformYouTube:
		rendered.ThumbnailURL = post.ThumbnailURL
	default:
		rendered.EmbedMarkup = post.EmbedMarkup
		// Mirror of the document re-scan the embed scripts do after new
		// markup lands; failures there must never affect rendering.
		go c.Processor.Process(post.Platform)
	}

	return rendered
}

func (c *CardImpl) cardText(post *domain.Post) string {
	text := fmt.Sprintf("[%s] #%d", post.Platform, post.ID)
	// Cards are sent as plain text; captions and hashtags go out verbatim.
	if post.Caption != "" {
		text += "\n" + post.Caption
	}
	if post.Hashtag != "" {
		text += "\n" + post.Hashtag
	}
	text += fmt.Sprintf("\n❤️ %s", formatter.FormatLikes(post.LikeCount))
	if !post.IsEmbeddable {
		text += fmt.Sprintf("\nThis video can't be played here. Watch it on %s: %s", post.Platform, post.VideoURL)
	}
	return text
}

func (c *CardImpl) Play(ctx context.Context, post *domain.Post) (string, error) {
	if post.Platform != domain.PlatformYouTube || post.VideoID == "" {
		return "", card.ErrNotPlayable
	}

	c.mu.Lock()
	sess, ok := c.sessions[post.ID]
	if !ok {
		sess = newPlaybackSession(post, c.Loader, c.Factory, c.Logger, c.Config.Player.Origin)
		c.sessions[post.ID] = sess
	}
	c.mu.Unlock()

	return sess.Play(ctx)
}

func (c *CardImpl) Stop(postID int64) {
	c.mu.Lock()
	sess, ok := c.sessions[postID]
	delete(c.sessions, postID)
	c.mu.Unlock()

	if ok {
		sess.Close()
	}
}

func (c *CardImpl) State(postID int64) domain.PlaybackState {
	c.mu.Lock()
	sess, ok := c.sessions[postID]
	c.mu.Unlock()

	if !ok {
		return domain.PlaybackIdle
	}
	return sess.State()
}

func (c *CardImpl) CloseAll() {
	c.mu.Lock()
	sessions := make([]*playbackSession, 0, len(c.sessions))
	for id, sess := range c.sessions {
		sessions = append(sessions, sess)
		delete(c.sessions, id)
	}
	c.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}
