package playerimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orgball2608/social-video-feed/internal/player"
	"github.com/orgball2608/social-video-feed/pkg/config"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"go.uber.org/fx"
)

type ScriptOpts struct {
	fx.In

	Logger logger.Logger
	Config *config.Config
}

// HTTPScriptLoader fetches the iframe API script over HTTP. A successful
// fetch stands in for the environment's "API ready" signal.
type HTTPScriptLoader struct {
	url    string
	client *http.Client
	logger logger.Logger
}

func NewScriptLoader(opts ScriptOpts) *HTTPScriptLoader {
	return &HTTPScriptLoader{
		url:    opts.Config.Player.ScriptURL,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: opts.Logger.WithComponent("ScriptLoader"),
	}
}

var _ player.ScriptLoader = (*HTTPScriptLoader)(nil)

func (s *HTTPScriptLoader) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build script request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch player script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("player script fetch returned status %d", resp.StatusCode)
	}

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read player script body: %w", err)
	}

	s.logger.Debug("Fetched player script", "url", s.url, "bytes", n)
	return nil
}
