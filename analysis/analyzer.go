package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-emotive/translate"
	"go-emotive/types"
)

var ErrEmptyInput = errors.New("text must not be empty")

// Pipeline stages, used in StageError.
const (
	StageDetect    = "detect"
	StageTranslate = "translate"
	StageEmotion   = "emotion"
	StageSentiment = "sentiment"
)

// StageError reports which step of the pipeline failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

type Translator interface {
	Translate(ctx context.Context, text, detectedCode string) (string, string, error)
}

type EmotionClassifier interface {
	Classify(ctx context.Context, text string) (types.EmotionResult, error)
}

type SentimentClassifier interface {
	Classify(ctx context.Context, text string) (types.SentimentResult, error)
}

type NameResolver interface {
	Resolve(code string) string
}

// Recorder keeps finished analyses, e.g. a history store.
type Recorder interface {
	Save(ctx context.Context, result types.AnalysisResult) error
}

// Deps are the services an Analyzer runs on. All are required except Recorder.
type Deps struct {
	Detector   Detector
	Translator Translator
	Emotion    EmotionClassifier
	Sentiment  SentimentClassifier
	Names      NameResolver
	Recorder   Recorder
	Log        logrus.FieldLogger
}

// Analyzer runs the detect, translate, classify pipeline. It holds no
// per-request state and is safe to share.
type Analyzer struct {
	deps Deps
	now  func() time.Time
}

func NewAnalyzer(deps Deps) (*Analyzer, error) {
	switch {
	case deps.Detector == nil:
		return nil, errors.New("analysis: detector is required")
	case deps.Translator == nil:
		return nil, errors.New("analysis: translator is required")
	case deps.Emotion == nil:
		return nil, errors.New("analysis: emotion classifier is required")
	case deps.Sentiment == nil:
		return nil, errors.New("analysis: sentiment classifier is required")
	case deps.Names == nil:
		return nil, errors.New("analysis: name resolver is required")
	}
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	return &Analyzer{deps: deps, now: time.Now}, nil
}

// Analyze runs the whole pipeline for one input. When translation is
// unavailable the original text is classified and TranslationError is set.
func (a *Analyzer) Analyze(ctx context.Context, text string) (types.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return types.AnalysisResult{}, ErrEmptyInput
	}

	result := types.AnalysisResult{
		ID:    uuid.NewString(),
		Input: text,
	}
	log := a.deps.Log.WithField("analysis_id", result.ID)

	code, err := a.deps.Detector.Detect(ctx, text)
	if err != nil {
		return types.AnalysisResult{}, &StageError{Stage: StageDetect, Err: err}
	}
	result.DetectedLanguage = code

	english, _, err := a.deps.Translator.Translate(ctx, text, code)
	switch {
	case err == nil:
		result.TranslatedText = english
		result.Translated = english != text
	case errors.Is(err, translate.ErrTranslationUnavailable):
		log.WithError(err).WithField("language", code).Warn("translation unavailable, classifying original text")
		result.TranslatedText = text
		result.TranslationError = err.Error()
	default:
		return types.AnalysisResult{}, &StageError{Stage: StageTranslate, Err: err}
	}

	emotion, err := a.deps.Emotion.Classify(ctx, result.TranslatedText)
	if err != nil {
		return types.AnalysisResult{}, &StageError{Stage: StageEmotion, Err: err}
	}
	result.Emotion = emotion

	sentiment, err := a.deps.Sentiment.Classify(ctx, result.TranslatedText)
	if err != nil {
		return types.AnalysisResult{}, &StageError{Stage: StageSentiment, Err: err}
	}
	result.Sentiment = sentiment

	result.LanguageName = a.deps.Names.Resolve(code)
	result.AnalyzedAt = a.now().UTC()

	log.WithFields(logrus.Fields{
		"language":  code,
		"emotion":   emotion.Label,
		"sentiment": sentiment.Label,
	}).Debug("analysis complete")

	if a.deps.Recorder != nil {
		if err := a.deps.Recorder.Save(ctx, result); err != nil {
			log.WithError(err).Warn("failed to record analysis")
		}
	}

	return result, nil
}
