package classifierimpl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

var tiktokVideoRe = regexp.MustCompile(`video/(\d+)`)

func matchTikTok(rawURL string) *domain.Classification {
	if !strings.Contains(rawURL, "tiktok.com") {
		return nil
	}

	// The numeric video id is optional; markup is still produced without it.
	videoID := ""
	if m := tiktokVideoRe.FindStringSubmatch(rawURL); m != nil {
		videoID = m[1]
	}

	markup := fmt.Sprintf(
		`<blockquote class="tiktok-embed" cite="%s" data-video-id="%s" style="max-width: 605px; min-width: 325px; margin: 0 auto;"><section></section></blockquote>`,
		rawURL, videoID,
	)

	return &domain.Classification{
		Platform:     domain.PlatformTikTok,
		EmbedMarkup:  markup,
		IsEmbeddable: true,
	}
}
