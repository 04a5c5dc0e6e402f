package player

import "context"

// Loader ensures the external player script is fetched and initialized at
// most once per process. Concurrent callers before the first completion all
// observe the same attempt and resolve together; calls after a successful
// load return immediately. A failed attempt fails every waiter and resets,
// so a later call can try again.
type Loader interface {
	EnsureLoaded(ctx context.Context) error
}

// ScriptLoader is the port to the hosting environment: fetch and initialize
// the external player script a single time.
type ScriptLoader interface {
	Load(ctx context.Context) error
}

// Options mirror the playback parameters a card requests when it creates a
// player for a post's video id.
type Options struct {
	ContainerID    string
	VideoID        string
	Autoplay       bool
	Muted          bool
	Controls       bool
	ShowRelated    bool
	ModestBranding bool
	Origin         string
}

// Handle is a live player instance owned by the external API. Destroy must
// be safe to call more than once; only the first call tears anything down.
type Handle interface {
	URL() string
	Destroy()
}

// Factory creates player handles. onError is invoked at most once if the
// instance later reports a playback failure.
type Factory interface {
	Create(ctx context.Context, opts Options, onError func(error)) (Handle, error)
}
