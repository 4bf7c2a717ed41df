package assistant

import (
	"context"
	"sync"

	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/utils/logging"
)

// VideoSearcher gathers supplementary video results
type VideoSearcher interface {
	Search(ctx context.Context, query string) ([]model.VideoRef, error)
}

// PlaceSearcher gathers supplementary nearby-place results
type PlaceSearcher interface {
	Nearby(ctx context.Context, category string, coord model.Coordinate) ([]model.PlaceRef, error)
}

// gather runs the intent-gated lookups. Video and place searches are
// independent and issued concurrently; a failure in either degrades to an
// empty list and never aborts the turn. Location must settle before the
// place search starts, and a nil coordinate skips it entirely.
func (s *Session) gather(ctx context.Context, text string, intents Intents) ([]model.VideoRef, []model.PlaceRef) {
	logger := logging.From(ctx)

	var (
		wg     sync.WaitGroup
		videos []model.VideoRef
		places []model.PlaceRef
	)

	if intents.Video && s.videos != nil {
		query := s.vocab.VideoQuery(text)
		wg.Add(1)
		go func() {
			defer wg.Done()
			found, err := s.videos.Search(ctx, query)
			if err != nil {
				logger.Warn("video search failed, continuing without videos",
					"query", query, "error", err)
				return
			}
			videos = found
		}()
	}

	if intents.Place && s.places != nil {
		if coord := s.location.Resolve(ctx); coord != nil {
			category := s.vocab.PlaceCategory(text)
			wg.Add(1)
			go func() {
				defer wg.Done()
				found, err := s.places.Nearby(ctx, category, *coord)
				if err != nil {
					logger.Warn("place search failed, continuing without places",
						"category", category, "error", err)
					return
				}
				places = found
			}()
		}
	}

	wg.Wait()
	return videos, places
}
