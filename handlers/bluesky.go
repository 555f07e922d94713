package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-emotive/bluesky"
	"go-emotive/types"
)

type FeedFetcher interface {
	FetchFeed(ctx context.Context, uri string, limit int) ([]bluesky.Post, error)
}

type postAnalysis struct {
	URI      string                `json:"uri"`
	Handle   string                `json:"handle"`
	Text     string                `json:"text"`
	Analysis *types.AnalysisResult `json:"analysis,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// BlueskyHandler fetches posts from a feed and analyzes each one. A post
// that fails analysis carries its error instead of failing the request.
func BlueskyHandler(c *gin.Context, feed FeedFetcher, analyzer Analyzer) {
	uri := c.Query("feed")
	if uri == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feed query parameter is required"})
		return
	}

	limit := bluesky.MaxLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = bluesky.ClampLimit(n)
	}

	posts, err := feed.FetchFeed(c.Request.Context(), uri, limit)
	if err != nil {
		c.Error(err)
		if errors.Is(err, bluesky.ErrInvalidFeed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch feed", "details": err.Error()})
		return
	}

	results := make([]postAnalysis, 0, len(posts))
	for _, post := range posts {
		item := postAnalysis{URI: post.URI, Handle: post.Author.Handle, Text: post.Record.Text}
		result, err := analyzer.Analyze(c.Request.Context(), post.Record.Text)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Analysis = &result
		}
		results = append(results, item)
	}

	c.JSON(http.StatusOK, gin.H{"feed": uri, "count": len(results), "results": results})
}
