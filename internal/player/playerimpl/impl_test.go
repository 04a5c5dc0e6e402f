package playerimpl

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/pkg/config"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScript struct {
	loads atomic.Int32
	delay time.Duration

	mu  sync.Mutex
	err error
}

func (f *fakeScript) Load(ctx context.Context) error {
	f.loads.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeScript) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func newTestLoader(script *fakeScript, maxRetries uint64) *LoaderImpl {
	cfg := &config.Config{}
	cfg.Player.LoadTimeout = 2 * time.Second
	cfg.Player.MaxRetries = maxRetries

	return New(Opts{
		Script: script,
		Logger: logger.New(logger.Opts{}),
		Config: cfg,
	})
}

func TestEnsureLoaded_ConcurrentCallersShareOneAttempt(t *testing.T) {
	script := &fakeScript{delay: 50 * time.Millisecond}
	loader := newTestLoader(script, 0)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = loader.EnsureLoaded(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), script.loads.Load(), "overlapping calls must share a single load")
	assert.Equal(t, domain.ScriptReady, loader.State())
}

func TestEnsureLoaded_ReadyIsTerminal(t *testing.T) {
	script := &fakeScript{}
	loader := newTestLoader(script, 0)

	require.NoError(t, loader.EnsureLoaded(context.Background()))
	require.NoError(t, loader.EnsureLoaded(context.Background()))
	require.NoError(t, loader.EnsureLoaded(context.Background()))

	assert.Equal(t, int32(1), script.loads.Load())
}

func TestEnsureLoaded_FailureDoesNotHangAndAllowsRetry(t *testing.T) {
	script := &fakeScript{}
	script.setErr(errors.New("script blocked"))
	loader := newTestLoader(script, 0)

	err := loader.EnsureLoaded(context.Background())
	require.Error(t, err, "a failed load must surface instead of suspending callers forever")
	assert.Equal(t, domain.ScriptNotRequested, loader.State(), "failure resets the state machine")

	// A later play request gets a fresh attempt.
	script.setErr(nil)
	require.NoError(t, loader.EnsureLoaded(context.Background()))
	assert.Equal(t, domain.ScriptReady, loader.State())
	assert.Equal(t, int32(2), script.loads.Load())
}

func TestEnsureLoaded_FailedAttemptFailsEveryWaiter(t *testing.T) {
	script := &fakeScript{}
	script.setErr(errors.New("script blocked"))
	loader := newTestLoader(script, 0)

	// A fresh call racing the failed attempt's completion must never make
	// that attempt's waiters observe success: each waiter reads the outcome
	// of the attempt it joined.
	for i := 0; i < 25; i++ {
		var wg sync.WaitGroup
		errs := make([]error, 16)
		for j := range errs {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				errs[j] = loader.EnsureLoaded(context.Background())
			}(j)
		}

		err := loader.EnsureLoaded(context.Background())
		require.Error(t, err)
		wg.Wait()

		for j, err := range errs {
			require.Error(t, err, "waiter %d of iteration %d observed success for a failed load", j, i)
		}
	}
}

func TestEnsureLoaded_RetriesBeforeFailing(t *testing.T) {
	script := &fakeScript{}
	script.setErr(errors.New("flaky network"))
	loader := newTestLoader(script, 2)

	err := loader.EnsureLoaded(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(3), script.loads.Load(), "initial attempt plus two retries")
}

func TestEnsureLoaded_WaiterHonorsContext(t *testing.T) {
	script := &fakeScript{delay: 200 * time.Millisecond}
	loader := newTestLoader(script, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := loader.EnsureLoaded(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The shared attempt keeps running and completes for the next caller.
	require.NoError(t, loader.EnsureLoaded(context.Background()))
	assert.Equal(t, int32(1), script.loads.Load())
}
