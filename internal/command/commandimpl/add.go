package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orgball2608/social-video-feed/internal/classifier"
	"github.com/orgball2608/social-video-feed/internal/feed"
)

func (c *CommandImpl) handleAdd(ctx context.Context, chatID int64, args string) error {
	if !c.Limiter.Allow(chatID) {
		_, err := c.Telegram.SendMessage(chatID, "You're going too fast. Please wait a moment and try again.")
		return err
	}

	videoURL, caption, hashtag := splitSubmission(args)
	if videoURL == "" {
		_, err := c.Telegram.SendMessage(chatID,
			"Please provide a video URL: /add <url> | <caption> | <hashtag>")
		return err
	}

	sentMsgID, err := c.Telegram.SendMessage(chatID, "Adding your video... ⏳")
	if err != nil {
		return fmt.Errorf("failed to send initial message: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	post, err := c.Feed.AddPost(ctxWithTimeout, chatID, videoURL, caption, hashtag)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrEmptyURL):
			return c.Telegram.EditMessageText(chatID, sentMsgID, "A video URL is required.")
		case errors.Is(err, classifier.ErrUnrecognized):
			return c.Telegram.EditMessageText(chatID, sentMsgID,
				"❌ Could not process this video URL. Please check the link and try again. Supported platforms are "+classifier.SupportedPlatforms+".")
		default:
			c.Telegram.EditMessageText(chatID, sentMsgID, "Something went wrong. Please try again later.")
			return fmt.Errorf("failed to add post: %w", err)
		}
	}

	if err := c.Telegram.EditMessageText(chatID, sentMsgID, "✅ Added to your feed!"); err != nil {
		c.Logger.Warn("Failed to edit confirmation message", "error", err)
	}

	return c.sendCard(chatID, post)
}

// splitSubmission parses "url | caption | hashtag"; caption and hashtag are
// optional free text.
func splitSubmission(args string) (videoURL, caption, hashtag string) {
	parts := strings.SplitN(args, "|", 3)

	videoURL = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		caption = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		hashtag = strings.TrimSpace(parts[2])
	}
	return videoURL, caption, hashtag
}
