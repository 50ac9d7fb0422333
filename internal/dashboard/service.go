package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/okeb-ng/backoffice/internal/ledger"
	"github.com/okeb-ng/backoffice/internal/platform/cache"
)

// Service serves the rollup, caching the finished overview per version
// and business day. Concurrent cold fetches collapse into one database
// pass.
type Service struct {
	repo  *Repository
	cache *cache.Versioned
	group singleflight.Group
	now   func() time.Time
}

func NewService(repo *Repository, cache *cache.Versioned) *Service {
	return &Service{repo: repo, cache: cache, now: time.Now}
}

// Overview returns the dashboard payload for today.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	ref := s.now()
	day := ledger.Day(ref)

	key, err := s.cache.BuildKey(ctx, "dashboard", "overview", day)
	if err != nil {
		return Overview{}, err
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		var out Overview
		err := s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
			history, err := s.repo.FetchHistory(ctx)
			if err != nil {
				return nil, err
			}
			return BuildOverview(history, ref), nil
		})
		return out, err
	})
	if err != nil {
		return Overview{}, err
	}
	return v.(Overview), nil
}

// Warm computes and stores today's overview. Used by the scheduled
// warmup task so the first morning request is served hot.
func (s *Service) Warm(ctx context.Context) error {
	_, err := s.Overview(ctx)
	return err
}
