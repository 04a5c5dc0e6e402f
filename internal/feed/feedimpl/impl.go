package feedimpl

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/orgball2608/social-video-feed/internal/classifier"
	"github.com/orgball2608/social-video-feed/internal/domain"
	"github.com/orgball2608/social-video-feed/internal/feed"
	"github.com/orgball2608/social-video-feed/pkg/config"
	apperrors "github.com/orgball2608/social-video-feed/pkg/errors"
	"github.com/orgball2608/social-video-feed/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LC         fx.Lifecycle
	Classifier classifier.Client
	Logger     logger.Logger
	Config     *config.Config
}

type StoreImpl struct {
	classifier classifier.Client
	logger     logger.Logger
	config     *config.Config
	pool       *ants.Pool

	mu     sync.Mutex
	feeds  map[int64][]*domain.Post
	nextID int64
}

// New creates the in-memory store and manages its worker pool lifecycle.
func New(opts Opts) (*StoreImpl, error) {
	pool, err := ants.NewPool(opts.Config.Feed.WorkerPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission pool: %w", err)
	}

	s := &StoreImpl{
		classifier: opts.Classifier,
		logger:     opts.Logger.WithComponent("FeedStore"),
		config:     opts.Config,
		pool:       pool,
		feeds:      make(map[int64][]*domain.Post),
		nextID:     time.Now().UnixMilli(),
	}

	opts.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pool.Release()
			return nil
		},
	})

	return s, nil
}

var _ feed.Store = (*StoreImpl)(nil)

func (s *StoreImpl) AddPost(ctx context.Context, chatID int64, videoURL, caption, hashtag string) (*domain.Post, error) {
	if strings.TrimSpace(videoURL) == "" {
		return nil, feed.ErrEmptyURL
	}

	type outcome struct {
		post *domain.Post
		err  error
	}
	resultCh := make(chan outcome, 1)

	err := s.pool.Submit(func() {
		// Artificial delay: the submission outcome is applied asynchronously,
		// like the original user experience.
		time.Sleep(s.config.Feed.SubmitDelay)

		cls, err := s.classifier.Classify(videoURL)
		if err != nil {
			resultCh <- outcome{err: err}
			return
		}

		post := s.buildPost(videoURL, caption, hashtag, cls)

		s.mu.Lock()
		s.feeds[chatID] = append([]*domain.Post{post}, s.feeds[chatID]...)
		s.mu.Unlock()

		s.logger.Info("Post added",
			"chat_id", chatID,
			"post_id", post.ID,
			"platform", post.Platform)
		resultCh <- outcome{post: clonePost(post)}
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to submit post job")
	}

	// A cancelled caller stops waiting, but the pending submission is not
	// retracted; it still lands in the feed.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultCh:
		return res.post, res.err
	}
}

func (s *StoreImpl) buildPost(videoURL, caption, hashtag string, cls *domain.Classification) *domain.Post {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.mu.Unlock()

	seedMax := s.config.Feed.LikeSeedMax
	if seedMax <= 0 {
		seedMax = 1
	}

	return &domain.Post{
		ID:           id,
		VideoURL:     videoURL,
		Platform:     cls.Platform,
		EmbedMarkup:  cls.EmbedMarkup,
		ThumbnailURL: cls.ThumbnailURL,
		VideoID:      cls.VideoID,
		IsEmbeddable: cls.IsEmbeddable,
		Caption:      caption,
		Hashtag:      hashtag,
		LikeCount:    rand.Intn(seedMax),
		CreatedAt:    time.Now(),
	}
}

func (s *StoreImpl) LikePost(chatID int64, postID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.feeds[chatID] {
		if post.ID == postID {
			post.LikeCount++
			return post.LikeCount, nil
		}
	}
	return 0, feed.ErrNotFound
}

func (s *StoreImpl) ListPosts(chatID int64) []*domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*domain.Post, 0, len(s.feeds[chatID]))
	for _, post := range s.feeds[chatID] {
		posts = append(posts, clonePost(post))
	}
	return posts
}

func (s *StoreImpl) GetPost(chatID int64, postID int64) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, post := range s.feeds[chatID] {
		if post.ID == postID {
			return clonePost(post), nil
		}
	}
	return nil, feed.ErrNotFound
}

func clonePost(p *domain.Post) *domain.Post {
	c := *p
	return &c
}
