package classifier

import (
	"errors"

	"github.com/orgball2608/social-video-feed/internal/domain"
)

// ErrUnrecognized is returned when no supported platform pattern matches.
var ErrUnrecognized = errors.New("unrecognized video url")

// SupportedPlatforms is used in user-facing error messages.
const SupportedPlatforms = "YouTube, TikTok, Facebook, Zalo, and Instagram"

type Client interface {
	Classify(rawURL string) (*domain.Classification, error)
}
