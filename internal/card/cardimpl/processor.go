package cardimpl

import (
	"time"

	"github.com/orgball2608/social-video-feed/internal/card"
	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"go.uber.org/fx"
)

type ProcessorOpts struct {
	fx.In

	Logger logger.Logger
}

// LoggingProcessor is the default post-render hook. It stands in for the
// embed scripts' document re-scan (instgrm.Embeds.process, tiktok.load);
// outcomes are only logged, never surfaced.
type LoggingProcessor struct {
	logger logger.Logger
}

func NewProcessor(opts ProcessorOpts) *LoggingProcessor {
	return &LoggingProcessor{
		logger: opts.Logger.WithComponent("EmbedProcessor"),
	}
}

var _ card.EmbedProcessor = (*LoggingProcessor)(nil)

func (p *LoggingProcessor) Process(platform domain.Platform) {
	if platform == domain.PlatformTikTok {
		// TikTok's widget needs a beat before it picks up new blockquotes.
		time.Sleep(100 * time.Millisecond)
	}
	p.logger.Debug("Processed embeds", "platform", platform)
}
