package adapter

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/model"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTube searches videos via the YouTube Data API
type YouTube struct {
	svc        *youtube.Service
	maxResults int64
}

type YouTubeOption func(*YouTube)

func WithMaxVideoResults(n int64) YouTubeOption {
	return func(y *YouTube) {
		y.maxResults = n
	}
}

func NewYouTube(ctx context.Context, apiKey string, opts ...YouTubeOption) (*YouTube, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create youtube service")
	}

	y := &YouTube{
		svc:        svc,
		maxResults: 5,
	}

	for _, opt := range opts {
		opt(y)
	}

	return y, nil
}

// Search returns at most one page of video results for the query
func (y *YouTube) Search(ctx context.Context, query string) ([]model.VideoRef, error) {
	call := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(y.maxResults)

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search videos", goerr.V("query", query))
	}

	videos := make([]model.VideoRef, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}

		ref := model.VideoRef{
			ID:          item.Id.VideoId,
			Title:       item.Snippet.Title,
			ChannelName: item.Snippet.ChannelTitle,
			WatchURL:    "https://www.youtube.com/watch?v=" + item.Id.VideoId,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			ref.ThumbnailURL = item.Snippet.Thumbnails.Medium.Url
		}

		videos = append(videos, ref)
	}

	return videos, nil
}
