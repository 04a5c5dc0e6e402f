package classifierimpl

import (
	"github.com/orgball2608/social-video-feed/internal/classifier"
	"github.com/orgball2608/social-video-feed/internal/domain"
)

type ClassifierImpl struct{}

func New() *ClassifierImpl {
	return &ClassifierImpl{}
}

var _ classifier.Client = (*ClassifierImpl)(nil)

// matchers are tried in a fixed priority order; the first match wins. The
// order must stay YouTube, TikTok, Facebook, Instagram, Zalo so that any
// accidental overlap between patterns resolves the same way it always has.
var matchers = []func(string) *domain.Classification{
	matchYouTube,
	matchTikTok,
	matchFacebook,
	matchInstagram,
	matchZalo,
}

// Classify maps a raw URL string to a platform tag plus the metadata needed
// to render it. It is a pure function: no side effects, never panics on
// empty or malformed input.
func (c *ClassifierImpl) Classify(rawURL string) (*domain.Classification, error) {
	for _, match := range matchers {
		if cls := match(rawURL); cls != nil {
			return cls, nil
		}
	}
	return nil, classifier.ErrUnrecognized
}
