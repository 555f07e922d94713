// Package langdetect guesses the ISO 639-1 code of a piece of text.
package langdetect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"

	"go-emotive/nlp"
)

// ErrUndetermined is returned when no language could be identified.
var ErrUndetermined = errors.New("language could not be determined")

type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// Normalize lower-cases a code and strips any region or script suffix ("en-US" -> "en").
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		code = code[:idx]
	}
	return code
}

// Whatlang detects offline with trigram and script statistics, limited to
// the supported languages. Unreliable guesses count as undetermined.
type Whatlang struct {
	options whatlanggo.Options
}

func NewWhatlang() *Whatlang {
	whitelist := make(map[whatlanggo.Lang]bool, len(whatlangSupported))
	for _, l := range whatlangSupported {
		whitelist[l] = true
	}
	return &Whatlang{options: whatlanggo.Options{Whitelist: whitelist}}
}

func (d *Whatlang) Detect(ctx context.Context, text string) (string, error) {
	info := whatlanggo.DetectWithOptions(text, d.options)
	if info.Script == nil || !info.IsReliable() {
		return "", ErrUndetermined
	}
	code := Normalize(info.Lang.Iso6391())
	if code == "" {
		return "", ErrUndetermined
	}
	return code, nil
}

// Cloud asks the Natural Language API, which reports the language it used for the document.
type Cloud struct {
	client nlp.SentimentAPI
}

func NewCloud(client nlp.SentimentAPI) *Cloud {
	return &Cloud{client: client}
}

func (d *Cloud) Detect(ctx context.Context, text string) (string, error) {
	s, err := nlp.AnalyzeSentiment(ctx, d.client, text)
	if err != nil {
		if errors.Is(err, nlp.ErrUnsupportedText) {
			return "", fmt.Errorf("%w: %v", ErrUndetermined, err)
		}
		return "", err
	}
	code := Normalize(s.LanguageCode)
	if code == "" {
		return "", ErrUndetermined
	}
	return code, nil
}
