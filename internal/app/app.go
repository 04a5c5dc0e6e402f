package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/orgball2608/social-video-feed/internal/card"
	"github.com/orgball2608/social-video-feed/internal/card/cardimpl"
	"github.com/orgball2608/social-video-feed/internal/classifier"
	"github.com/orgball2608/social-video-feed/internal/classifier/classifierimpl"
	"github.com/orgball2608/social-video-feed/internal/command"
	"github.com/orgball2608/social-video-feed/internal/command/commandimpl"
	"github.com/orgball2608/social-video-feed/internal/feed"
	"github.com/orgball2608/social-video-feed/internal/feed/feedimpl"
	"github.com/orgball2608/social-video-feed/internal/player"
	"github.com/orgball2608/social-video-feed/internal/player/playerimpl"
	"github.com/orgball2608/social-video-feed/internal/ratelimit"
	"github.com/orgball2608/social-video-feed/internal/telegram"
	"github.com/orgball2608/social-video-feed/internal/telegram/telegramimpl"
	"github.com/orgball2608/social-video-feed/pkg/config"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"go.uber.org/fx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			classifierimpl.New,
			fx.As(new(classifier.Client)),
		),
		fx.Annotate(
			playerimpl.NewScriptLoader,
			fx.As(new(player.ScriptLoader)),
		),
		fx.Annotate(
			playerimpl.New,
			fx.As(new(player.Loader)),
		),
		fx.Annotate(
			playerimpl.NewFactory,
			fx.As(new(player.Factory)),
		),
		fx.Annotate(
			cardimpl.NewProcessor,
			fx.As(new(card.EmbedProcessor)),
		),
		fx.Annotate(
			cardimpl.New,
			fx.As(new(card.Client)),
		),
		fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Store)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
		fx.Annotate(
			func(cfg *config.Config) *ratelimit.InMemoryLimiter {
				return ratelimit.NewInMemoryLimiter(cfg.Feed.RateEvery, cfg.Feed.RateBurst)
			},
			fx.As(new(ratelimit.Limiter)),
		),
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, cmdClient command.Client, cards card.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			go func() {
				if err := cmdClient.HandleCommand(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("Command handler stopped", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			cards.CloseAll()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
