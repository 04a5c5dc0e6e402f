package classifierimpl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

func matchFacebook(rawURL string) *domain.Classification {
	if !strings.Contains(rawURL, "facebook.com") && !strings.Contains(rawURL, "fb.watch") {
		return nil
	}

	// Muted autoplay is required for the embed to start playing at all.
	markup := fmt.Sprintf(
		`<iframe src="https://www.facebook.com/plugins/video.php?href=%s&show_text=false&autoplay=true&mute=1" style="border:none;overflow:hidden; width:100%%; height:100%%;" scrolling="no" frameborder="0" allowfullscreen="true" allow="autoplay; clipboard-write; encrypted-media; picture-in-picture; web-share"></iframe>`,
		url.QueryEscape(rawURL),
	)

	return &domain.Classification{
		Platform:     domain.PlatformFacebook,
		EmbedMarkup:  markup,
		IsEmbeddable: true,
	}
}
