package translate

import (
	"context"
	"time"

	"github.com/bregydoc/gtranslate"
)

// Google uses the public Google Translate endpoint.
type Google struct {
	tries int
	delay time.Duration
}

func NewGoogle(tries int) *Google {
	if tries < 1 {
		tries = 1
	}
	return &Google{tries: tries, delay: 500 * time.Millisecond}
}

func (g *Google) Name() string { return "google" }

// Translate runs the blocking gtranslate call and gives up when ctx ends.
func (g *Google) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		out, err := gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{
			From:  source,
			To:    target,
			Tries: g.tries,
			Delay: g.delay,
		})
		done <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}
