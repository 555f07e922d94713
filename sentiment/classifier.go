package sentiment

import (
	"context"

	"go-emotive/types"
)

// Raw class ids emitted by the 3-class sentiment model.
const (
	LabelNegative = "LABEL_0"
	LabelNeutral  = "LABEL_1"
	LabelPositive = "LABEL_2"
)

var sentimentLabels = map[string]string{
	LabelNegative: types.SentimentNegative,
	LabelNeutral:  types.SentimentNeutral,
	LabelPositive: types.SentimentPositive,
}

var polarities = map[string]float64{
	types.SentimentNegative: -1.0,
	types.SentimentNeutral:  0.0,
	types.SentimentPositive: 1.0,
}

// Backend returns the raw class id of the most likely sentiment class.
type Backend interface {
	RawLabel(ctx context.Context, text string) (string, error)
}

type Classifier struct {
	backend Backend
}

func NewClassifier(backend Backend) *Classifier {
	return &Classifier{backend: backend}
}

func (c *Classifier) Classify(ctx context.Context, text string) (types.SentimentResult, error) {
	raw, err := c.backend.RawLabel(ctx, text)
	if err != nil {
		return types.SentimentResult{}, err
	}
	return FromRawLabel(raw), nil
}

// FromRawLabel maps a model class id to a label and its fixed polarity.
// Ids outside the table map to Unknown with polarity 0.
func FromRawLabel(raw string) types.SentimentResult {
	label, ok := sentimentLabels[raw]
	if !ok {
		label = types.SentimentUnknown
	}
	return types.SentimentResult{
		Label:    label,
		Polarity: Polarity(label),
		RawLabel: raw,
	}
}

// Polarity is -1, 0 or +1 by label; the model confidence is not used.
func Polarity(label string) float64 {
	return polarities[label]
}

// rawLabelFromScore buckets a continuous score with the usual VADER cutoffs.
func rawLabelFromScore(score float64) string {
	switch {
	case score >= 0.05:
		return LabelPositive
	case score <= -0.05:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
