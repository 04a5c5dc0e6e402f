package classifierimpl

import (
	"regexp"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

var zaloRe = regexp.MustCompile(`https?://zalo\.me/v/([a-zA-Z0-9]+)`)

// Zalo videos cannot be embedded; callers must render a link-out instead.
func matchZalo(rawURL string) *domain.Classification {
	if !zaloRe.MatchString(rawURL) {
		return nil
	}

	return &domain.Classification{
		Platform:     domain.PlatformZalo,
		IsEmbeddable: false,
	}
}
