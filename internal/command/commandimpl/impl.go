package commandimpl

import (
	"context"
	"errors"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/social-video-feed/internal/card"
	"github.com/orgball2608/social-video-feed/internal/command"
	"github.com/orgball2608/social-video-feed/internal/feed"
	"github.com/orgball2608/social-video-feed/internal/ratelimit"
	"github.com/orgball2608/social-video-feed/internal/telegram"
	"github.com/orgball2608/social-video-feed/pkg/config"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Feed     feed.Store
	Cards    card.Client
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Telegram telegram.Client
	Feed     feed.Store
	Cards    card.Client
	Limiter  ratelimit.Limiter
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Telegram: opts.Telegram,
		Feed:     opts.Feed,
		Cards:    opts.Cards,
		Limiter:  opts.Limiter,
		Logger:   opts.Logger.WithComponent("Command"),
		Config:   opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)

const helpMessage = `👋 Welcome to the Video Feed Bot!

Paste a video link from YouTube, TikTok, Facebook, Instagram or Zalo to add it to your feed.

Commands:
/add <url> | <caption> | <hashtag> - Add a video with caption and hashtag.
/feed - Show your feed, newest first.
/like <post_id> - Like a post.
/play <post_id> - Start playback of a YouTube post.
/stop <post_id> - Stop playback and release the player.

Type /help at any time to see this guide.`

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			go func(u tgbotapi.Update) {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				if u.Message == nil {
					return
				}

				c.Logger.Info("Message received", "from", u.Message.From.UserName, "text", u.Message.Text)

				if err := c.processUpdate(ctx, u); err != nil {
					c.Logger.Error("Error processing update",
						"command", u.Message.Command(),
						"error", err)
				}
			}(update)
		}
	}
}

func (c *CommandImpl) processUpdate(ctx context.Context, update tgbotapi.Update) error {
	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		// A bare pasted link is the same as /add.
		return c.handleAdd(ctx, chatID, update.Message.Text)
	}

	switch update.Message.Command() {
	case "start", "help":
		_, err := c.Telegram.SendMessage(chatID, helpMessage)
		return err
	case "add":
		return c.handleAdd(ctx, chatID, update.Message.CommandArguments())
	case "feed":
		return c.handleFeed(chatID)
	case "like":
		return c.handleLike(chatID, update.Message.CommandArguments())
	case "play":
		return c.handlePlay(ctx, chatID, update.Message.CommandArguments())
	case "stop":
		return c.handleStop(chatID, update.Message.CommandArguments())
	default:
		_, err := c.Telegram.SendMessage(chatID, "Unknown command. Type /help to see the list of available commands.")
		return err
	}
}
