package cardimpl

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/internal/player"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	err   error
	calls atomic.Int32
}

func (f *fakeLoader) EnsureLoaded(ctx context.Context) error {
	f.calls.Add(1)
	return f.err
}

type fakeHandle struct {
	destroys atomic.Int32
}

func (f *fakeHandle) URL() string { return "https://www.youtube.com/embed/dQw4w9WgXcQ" }
func (f *fakeHandle) Destroy()    { f.destroys.Add(1) }

type fakeFactory struct {
	err     error
	created []*fakeHandle
	onError func(error)
	gotOpts player.Options
}

func (f *fakeFactory) Create(ctx context.Context, opts player.Options, onError func(error)) (player.Handle, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.gotOpts = opts
	f.onError = onError
	h := &fakeHandle{}
	f.created = append(f.created, h)
	return h, nil
}

func testPost() *domain.Post {
	return &domain.Post{
		ID:           7,
		Platform:     domain.PlatformYouTube,
		VideoID:      "dQw4w9WgXcQ",
		VideoURL:     "https://youtu.be/dQw4w9WgXcQ",
		IsEmbeddable: true,
	}
}

func newTestSession(loader *fakeLoader, factory *fakeFactory) *playbackSession {
	return newPlaybackSession(testPost(), loader, factory, logger.New(logger.Opts{}), "https://feed.example.com")
}

func TestSession_PlayReachesPlaying(t *testing.T) {
	loader := &fakeLoader{}
	factory := &fakeFactory{}
	sess := newTestSession(loader, factory)

	require.Equal(t, domain.PlaybackIdle, sess.State())

	url, err := sess.Play(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, url)
	assert.Equal(t, domain.PlaybackPlaying, sess.State())
	require.Len(t, factory.created, 1)

	// The playback options required by autoplay policies.
	assert.True(t, factory.gotOpts.Autoplay)
	assert.True(t, factory.gotOpts.Muted)
	assert.True(t, factory.gotOpts.Controls)
	assert.False(t, factory.gotOpts.ShowRelated)
	assert.True(t, factory.gotOpts.ModestBranding)
	assert.Equal(t, "https://feed.example.com", factory.gotOpts.Origin)
	assert.Equal(t, "dQw4w9WgXcQ", factory.gotOpts.VideoID)
}

func TestSession_PlayWhilePlayingReturnsSameURL(t *testing.T) {
	sess := newTestSession(&fakeLoader{}, &fakeFactory{})

	url1, err := sess.Play(context.Background())
	require.NoError(t, err)
	url2, err := sess.Play(context.Background())
	require.NoError(t, err)

	assert.Equal(t, url1, url2)
}

func TestSession_PlaybackErrorTearsDownOnce(t *testing.T) {
	factory := &fakeFactory{}
	sess := newTestSession(&fakeLoader{}, factory)

	_, err := sess.Play(context.Background())
	require.NoError(t, err)

	playbackErr := errors.New("video unavailable")
	factory.onError(playbackErr)
	factory.onError(playbackErr) // a second report must be a no-op

	assert.Equal(t, domain.PlaybackErrored, sess.State())
	assert.Equal(t, playbackErr, sess.Err())
	assert.Equal(t, int32(1), factory.created[0].destroys.Load(), "the live instance is destroyed exactly once")
}

func TestSession_RetryAfterErrorCreatesFreshInstance(t *testing.T) {
	factory := &fakeFactory{}
	sess := newTestSession(&fakeLoader{}, factory)

	_, err := sess.Play(context.Background())
	require.NoError(t, err)
	factory.onError(errors.New("video unavailable"))
	require.Equal(t, domain.PlaybackErrored, sess.State())

	// Clicking the thumbnail again clears the error and retries.
	_, err = sess.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PlaybackPlaying, sess.State())
	assert.NoError(t, sess.Err())
	assert.Len(t, factory.created, 2)
}

func TestSession_LoaderFailureBecomesErrored(t *testing.T) {
	loader := &fakeLoader{err: errors.New("script blocked")}
	factory := &fakeFactory{}
	sess := newTestSession(loader, factory)

	_, err := sess.Play(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.PlaybackErrored, sess.State())
	assert.Empty(t, factory.created, "no player is created when the script never loads")
}

func TestSession_CloseReleasesHandleAndIsTerminal(t *testing.T) {
	factory := &fakeFactory{}
	sess := newTestSession(&fakeLoader{}, factory)

	_, err := sess.Play(context.Background())
	require.NoError(t, err)

	sess.Close()
	sess.Close() // idempotent

	assert.Equal(t, domain.PlaybackClosed, sess.State())
	assert.Equal(t, int32(1), factory.created[0].destroys.Load())

	_, err = sess.Play(context.Background())
	assert.Error(t, err, "a closed session never plays again")
}

func TestSession_NewPlayDestroysPriorInstanceFirst(t *testing.T) {
	factory := &fakeFactory{}
	sess := newTestSession(&fakeLoader{}, factory)

	_, err := sess.Play(context.Background())
	require.NoError(t, err)
	factory.onError(errors.New("video unavailable"))

	_, err = sess.Play(context.Background())
	require.NoError(t, err)

	require.Len(t, factory.created, 2)
	assert.Equal(t, int32(1), factory.created[0].destroys.Load())
	assert.Equal(t, int32(0), factory.created[1].destroys.Load(), "only the prior instance is torn down")
}
