package playerimpl

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/orgball2608/social-video-feed/internal/player"
	"github.com/orgball2608/social-video-feed/pkg/errors"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"go.uber.org/fx"
)

type FactoryOpts struct {
	fx.In

	Logger logger.Logger
}

// EmbedFactory builds player handles backed by the platform's embed endpoint,
// with the playback options encoded as player parameters.
type EmbedFactory struct {
	logger logger.Logger
}

func NewFactory(opts FactoryOpts) *EmbedFactory {
	return &EmbedFactory{
		logger: opts.Logger.WithComponent("PlayerFactory"),
	}
}

var _ player.Factory = (*EmbedFactory)(nil)

func (f *EmbedFactory) Create(_ context.Context, opts player.Options, onError func(error)) (player.Handle, error) {
	if opts.VideoID == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "player requires a video id")
	}

	v := url.Values{}
	v.Set("autoplay", boolParam(opts.Autoplay))
	v.Set("mute", boolParam(opts.Muted))
	v.Set("controls", boolParam(opts.Controls))
	v.Set("rel", boolParam(opts.ShowRelated))
	v.Set("modestbranding", boolParam(opts.ModestBranding))
	if opts.Origin != "" {
		v.Set("origin", opts.Origin)
	}

	h := &embedHandle{
		src:     fmt.Sprintf("https://www.youtube.com/embed/%s?%s", opts.VideoID, v.Encode()),
		onError: onError,
		logger:  f.logger,
	}

	f.logger.Debug("Created player instance", "video_id", opts.VideoID, "container", opts.ContainerID)
	return h, nil
}

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

type embedHandle struct {
	src     string
	onError func(error)
	logger  logger.Logger
	once    sync.Once
}

var _ player.Handle = (*embedHandle)(nil)

func (h *embedHandle) URL() string {
	return h.src
}

// Destroy releases the instance. Guarded so a teardown racing a playback
// error never runs twice.
func (h *embedHandle) Destroy() {
	h.once.Do(func() {
		h.logger.Debug("Destroyed player instance", "src", h.src)
	})
}
