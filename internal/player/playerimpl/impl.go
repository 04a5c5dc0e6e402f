package playerimpl

import (
	"context"
	"sync"

	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/internal/player"
	"github.com/orgball2608/social-video-feed/pkg/config"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"github.com/orgball2608/social-video-feed/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Script player.ScriptLoader
	Logger logger.Logger
	Config *config.Config
}

// loadAttempt is one shared load. Its error is written before done is
// closed and never after, so waiters that captured the attempt always see
// the outcome of their own attempt, even if a fresh one has already started.
type loadAttempt struct {
	done chan struct{}
	err  error
}

// LoaderImpl is a process-wide memoized loader for the external player
// script. State machine: NotRequested -> Loading -> Ready; Ready is terminal.
// A failed load resets to NotRequested so a later play request can retry.
type LoaderImpl struct {
	script player.ScriptLoader
	logger logger.Logger
	config *config.Config

	mu      sync.Mutex
	state   domain.PlayerScriptState
	attempt *loadAttempt
}

func New(opts Opts) *LoaderImpl {
	return &LoaderImpl{
		script: opts.Script,
		logger: opts.Logger.WithComponent("PlayerLoader"),
		config: opts.Config,
		state:  domain.ScriptNotRequested,
	}
}

var _ player.Loader = (*LoaderImpl)(nil)

func (l *LoaderImpl) EnsureLoaded(ctx context.Context) error {
	l.mu.Lock()
	switch l.state {
	case domain.ScriptReady:
		l.mu.Unlock()
		return nil
	case domain.ScriptNotRequested:
		l.state = domain.ScriptLoading
		l.attempt = &loadAttempt{done: make(chan struct{})}
		go l.load(l.attempt)
	}
	attempt := l.attempt
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		// The shared attempt keeps running; only this waiter gives up.
		return ctx.Err()
	case <-attempt.done:
		return attempt.err
	}
}

// State reports the current lifecycle phase, mainly for tests and logging.
func (l *LoaderImpl) State() domain.PlayerScriptState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *LoaderImpl) load(attempt *loadAttempt) {
	ctx, cancel := context.WithTimeout(context.Background(), l.config.Player.LoadTimeout)
	defer cancel()

	cfg := retry.DefaultConfig()
	cfg.MaxRetries = l.config.Player.MaxRetries

	err := retry.Do(ctx, l.logger, "load player script", func() error {
		return l.script.Load(ctx)
	}, cfg)

	l.mu.Lock()
	if err != nil {
		l.logger.Error("Player script load failed", "error", err)
		l.state = domain.ScriptNotRequested
		attempt.err = err
	} else {
		l.logger.Info("Player script ready")
		l.state = domain.ScriptReady
	}
	l.mu.Unlock()
	close(attempt.done)
}
