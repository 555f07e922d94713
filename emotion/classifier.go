package emotion

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go-emotive/mlmodel"
	"go-emotive/types"
)

var ErrNoScores = errors.New("emotion model returned no scores")

// Scorer returns one independent score per emotion label.
type Scorer interface {
	Score(ctx context.Context, text string) ([]types.LabelScore, error)
}

// Classifier ranks the scorer output. It never thresholds: the top label is
// reported however low its score.
type Classifier struct {
	scorer Scorer
}

func NewClassifier(scorer Scorer) *Classifier {
	return &Classifier{scorer: scorer}
}

func (c *Classifier) Classify(ctx context.Context, text string) (types.EmotionResult, error) {
	scores, err := c.scorer.Score(ctx, text)
	if err != nil {
		return types.EmotionResult{}, err
	}
	if len(scores) == 0 {
		return types.EmotionResult{}, ErrNoScores
	}
	return Rank(scores), nil
}

// Rank sorts pairs by descending score. Ties keep their input order.
func Rank(scores []types.LabelScore) types.EmotionResult {
	ranked := make([]types.LabelScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	res := types.EmotionResult{
		Labels: make([]string, len(ranked)),
		Scores: make([]float64, len(ranked)),
		Ranked: ranked,
	}
	for i, r := range ranked {
		res.Labels[i] = r.Label
		res.Scores[i] = r.Score
	}
	if len(ranked) > 0 {
		res.Label = ranked[0].Label
		res.Score = ranked[0].Score
		res.Emoji = types.EmotionEmoji(res.Label)
	}
	return res
}

// HostedScorer asks a hosted multi-label model for sigmoid scores over all labels.
type HostedScorer struct {
	client *mlmodel.Client
	model  string
}

func NewHostedScorer(client *mlmodel.Client, model string) *HostedScorer {
	return &HostedScorer{client: client, model: model}
}

func (s *HostedScorer) Score(ctx context.Context, text string) ([]types.LabelScore, error) {
	preds, err := s.client.CallModel(ctx, s.model, text, &mlmodel.Parameters{
		TopK:            len(types.EmotionLabels),
		FunctionToApply: "sigmoid",
	})
	if err != nil {
		return nil, fmt.Errorf("emotion inference: %w", err)
	}

	out := make([]types.LabelScore, 0, len(preds))
	for _, p := range preds {
		out = append(out, types.LabelScore{Label: p.Label, Score: p.Score})
	}
	return out, nil
}
