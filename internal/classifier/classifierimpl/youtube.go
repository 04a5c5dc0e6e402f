package classifierimpl

import (
	"fmt"
	"regexp"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

// Covers canonical watch URLs, youtu.be short links and /embed/ forms.
// The video id is always 11 characters.
var youtubeRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

func matchYouTube(rawURL string) *domain.Classification {
	m := youtubeRe.FindStringSubmatch(rawURL)
	if m == nil {
		return nil
	}

	videoID := m[1]
	return &domain.Classification{
		Platform: domain.PlatformYouTube,
		// No markup: the player is created imperatively through the iframe API.
		EmbedMarkup:  "",
		ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID),
		VideoID:      videoID,
		IsEmbeddable: true,
	}
}
