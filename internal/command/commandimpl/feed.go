package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/orgball2608/social-video-feed/internal/card"
	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/internal/feed"
	"github.com/orgball2608/social-video-feed/pkg/formatter"
)

func (c *CommandImpl) handleFeed(chatID int64) error {
	posts := c.Feed.ListPosts(chatID)
	if len(posts) == 0 {
		_, err := c.Telegram.SendMessage(chatID, "Your feed is empty. Paste a video link to get started!")
		return err
	}

	for _, post := range posts {
		if err := c.sendCard(chatID, post); err != nil {
			c.Logger.Error("Failed to send card", "post_id", post.ID, "error", err)
		}
	}
	return nil
}

// sendCard delivers one rendered card: a thumbnail photo for YouTube posts,
// a link-out for non-embeddable ones, and the embed markup otherwise.
func (c *CommandImpl) sendCard(chatID int64, post *domain.Post) error {
	rendered := c.Cards.Render(post)

	if rendered.ThumbnailURL != "" {
		hint := rendered.Text + fmt.Sprintf("\n▶️ /play %d to start playback", post.ID)
		if err := c.Telegram.SendPhotoByURL(chatID, rendered.ThumbnailURL, hint); err != nil {
			// Thumbnail delivery is best-effort; fall back to plain text.
			_, err = c.Telegram.SendMessage(chatID, hint)
			return err
		}
		return nil
	}

	text := rendered.Text
	if rendered.EmbedMarkup != "" {
		text += "\n" + rendered.EmbedMarkup
	}
	_, err := c.Telegram.SendMessage(chatID, text)
	return err
}

func (c *CommandImpl) handleLike(chatID int64, args string) error {
	postID, err := parsePostID(args)
	if err != nil {
		_, err := c.Telegram.SendMessage(chatID, "Please provide a post id: /like <post_id>")
		return err
	}

	likes, err := c.Feed.LikePost(chatID, postID)
	if err != nil {
		if errors.Is(err, feed.ErrNotFound) {
			_, err := c.Telegram.SendMessage(chatID, "Post not found.")
			return err
		}
		return err
	}

	_, err = c.Telegram.SendMessage(chatID, fmt.Sprintf("❤️ %s", formatter.FormatLikes(likes)))
	return err
}

func (c *CommandImpl) handlePlay(ctx context.Context, chatID int64, args string) error {
	postID, err := parsePostID(args)
	if err != nil {
		_, err := c.Telegram.SendMessage(chatID, "Please provide a post id: /play <post_id>")
		return err
	}

	post, err := c.Feed.GetPost(chatID, postID)
	if err != nil {
		_, err := c.Telegram.SendMessage(chatID, "Post not found.")
		return err
	}

	playbackURL, err := c.Cards.Play(ctx, post)
	if err != nil {
		switch {
		case errors.Is(err, card.ErrNotPlayable):
			_, err := c.Telegram.SendMessage(chatID, "Only YouTube posts support playback here.")
			return err
		case errors.Is(err, card.ErrPlaybackPending):
			_, err := c.Telegram.SendMessage(chatID, "That video is already starting.")
			return err
		default:
			// Per-card fallback: offer the link-out and a retry path.
			_, sendErr := c.Telegram.SendMessage(chatID, fmt.Sprintf(
				"⚠️ Playback failed. Watch it directly instead: %s\nSend /play %d to retry.",
				post.VideoURL, post.ID))
			if sendErr != nil {
				return sendErr
			}
			return fmt.Errorf("playback failed for post %d: %w", post.ID, err)
		}
	}

	_, err = c.Telegram.SendMessage(chatID, fmt.Sprintf("▶️ Now playing (muted autoplay):\n%s", playbackURL))
	return err
}

func (c *CommandImpl) handleStop(chatID int64, args string) error {
	postID, err := parsePostID(args)
	if err != nil {
		_, err := c.Telegram.SendMessage(chatID, "Please provide a post id: /stop <post_id>")
		return err
	}

	c.Cards.Stop(postID)
	_, err = c.Telegram.SendMessage(chatID, "Playback stopped.")
	return err
}

func parsePostID(args string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(args), 10, 64)
}
