package domain

import "time"

type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformTikTok    Platform = "TikTok"
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformZalo      Platform = "Zalo"
	PlatformUnknown   Platform = "Unknown"
)

// Classification is the render-relevant metadata extracted from a video URL.
// VideoID and ThumbnailURL are set only for YouTube; EmbedMarkup is empty for
// YouTube (the player is created imperatively) and for Zalo (not embeddable).
type Classification struct {
	Platform     Platform
	EmbedMarkup  string
	ThumbnailURL string
	VideoID      string
	IsEmbeddable bool
}

// Post is one submitted video entry. Immutable after creation except LikeCount.
type Post struct {
	ID           int64
	VideoURL     string
	Platform     Platform
	EmbedMarkup  string
	ThumbnailURL string
	VideoID      string
	IsEmbeddable bool
	Caption      string
	Hashtag      string
	LikeCount    int
	CreatedAt    time.Time
}
