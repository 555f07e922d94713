package sentiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonreiter/govader"

	"go-emotive/mlmodel"
	"go-emotive/nlp"
)

// Hosted picks the highest scoring class of a hosted 3-class model.
type Hosted struct {
	client *mlmodel.Client
	model  string
}

func NewHosted(client *mlmodel.Client, model string) *Hosted {
	return &Hosted{client: client, model: model}
}

func (h *Hosted) RawLabel(ctx context.Context, text string) (string, error) {
	preds, err := h.client.CallModel(ctx, h.model, text, nil)
	if err != nil {
		return "", fmt.Errorf("sentiment inference: %w", err)
	}
	best := preds[0]
	for _, p := range preds[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best.Label, nil
}

// Vader scores locally with the VADER lexicon.
type Vader struct {
	sia *govader.SentimentIntensityAnalyzer
	mu  sync.Mutex
}

func NewVader() *Vader {
	return &Vader{sia: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) RawLabel(ctx context.Context, text string) (string, error) {
	v.mu.Lock()
	scores := v.sia.PolarityScores(text)
	v.mu.Unlock()
	return rawLabelFromScore(scores.Compound), nil
}

// Cloud uses the document score of the Natural Language API.
type Cloud struct {
	client nlp.SentimentAPI
}

func NewCloud(client nlp.SentimentAPI) *Cloud {
	return &Cloud{client: client}
}

func (c *Cloud) RawLabel(ctx context.Context, text string) (string, error) {
	s, err := nlp.AnalyzeSentiment(ctx, c.client, text)
	if err != nil {
		return "", fmt.Errorf("sentiment analysis: %w", err)
	}
	return rawLabelFromScore(float64(s.Score)), nil
}
