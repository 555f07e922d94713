package bluesky

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bluesky-social/indigo/xrpc"
)

const (
	feedMethod = "app.bsky.feed.getFeed"

	// MaxLimit caps how many posts are pulled per request.
	MaxLimit = 10
)

var ErrInvalidFeed = errors.New("feed must be an at:// URI")

// Client reads public feeds from a Bluesky AppView.
type Client struct {
	xrpc *xrpc.Client
}

func NewClient(host string, timeout time.Duration) *Client {
	return &Client{
		xrpc: &xrpc.Client{
			Client: &http.Client{Timeout: timeout},
			Host:   strings.TrimRight(host, "/"),
		},
	}
}

// ClampLimit maps a requested limit into [1, MaxLimit]. Zero or negative
// selects MaxLimit.
func ClampLimit(limit int) int {
	if limit <= 0 || limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// FetchFeed returns up to limit posts with non-empty text from the feed
// generator at uri.
func (c *Client) FetchFeed(ctx context.Context, uri string, limit int) ([]Post, error) {
	if !strings.HasPrefix(uri, "at://") {
		return nil, ErrInvalidFeed
	}

	params := map[string]interface{}{
		"feed":  uri,
		"limit": ClampLimit(limit),
	}

	var out FeedResponse
	if err := c.xrpc.Do(ctx, xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		return nil, fmt.Errorf("error fetching feed via xrpc: %w", err)
	}

	posts := make([]Post, 0, len(out.Feed))
	for _, entry := range out.Feed {
		if strings.TrimSpace(entry.Post.Record.Text) == "" {
			continue
		}
		posts = append(posts, entry.Post)
	}
	return posts, nil
}
