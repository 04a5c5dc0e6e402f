package classifierimpl

import (
	"fmt"
	"strings"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

func matchInstagram(rawURL string) *domain.Classification {
	if !strings.Contains(rawURL, "instagram.com/p/") && !strings.Contains(rawURL, "instagram.com/reel/") {
		return nil
	}

	markup := fmt.Sprintf(
		`<blockquote class="instagram-media" data-instgrm-permalink="%s" data-instgrm-version="14" style="width:100%%; max-width: 540px;"></blockquote>`,
		rawURL,
	)

	return &domain.Classification{
		Platform:     domain.PlatformInstagram,
		EmbedMarkup:  markup,
		IsEmbeddable: true,
	}
}
