package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"go-emotive/emotion"
	"go-emotive/langdetect"
	"go-emotive/langname"
	"go-emotive/sentiment"
	"go-emotive/translate"
	"go-emotive/types"
)

const tamilGreeting = "வணக்கம், நீங்கள் எப்படி இருக்கிறீர்கள்?"

type fakeDetector struct {
	codes map[string]string
	err   error
}

func (f fakeDetector) Detect(ctx context.Context, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if code, ok := f.codes[text]; ok {
		return code, nil
	}
	return "en", nil
}

type fakeTranslateBackend struct {
	out   map[string]string
	err   error
	calls int
}

func (f *fakeTranslateBackend) Name() string { return "fake" }

func (f *fakeTranslateBackend) Translate(ctx context.Context, text, source, target string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.out[text], nil
}

// recordingScorer scores happy English text as joy and records what it saw.
type recordingScorer struct {
	seen []string
}

func (s *recordingScorer) Score(ctx context.Context, text string) ([]types.LabelScore, error) {
	s.seen = append(s.seen, text)
	return []types.LabelScore{
		{Label: "neutral", Score: 0.12},
		{Label: "joy", Score: 0.93},
		{Label: "anger", Score: 0.01},
		{Label: "excitement", Score: 0.35},
	}, nil
}

type recordingSentiment struct {
	seen []string
	raw  string
}

func (s *recordingSentiment) RawLabel(ctx context.Context, text string) (string, error) {
	s.seen = append(s.seen, text)
	return s.raw, nil
}

type memoryRecorder struct {
	saved []types.AnalysisResult
	err   error
}

func (m *memoryRecorder) Save(ctx context.Context, r types.AnalysisResult) error {
	m.saved = append(m.saved, r)
	return m.err
}

type fixture struct {
	backend   *fakeTranslateBackend
	scorer    *recordingScorer
	sentiment *recordingSentiment
	recorder  *memoryRecorder
	hook      *test.Hook
	analyzer  *Analyzer
}

func newFixture(t *testing.T, detector Detector) *fixture {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	f := &fixture{
		backend:   &fakeTranslateBackend{out: map[string]string{tamilGreeting: "Hello, how are you?"}},
		scorer:    &recordingScorer{},
		sentiment: &recordingSentiment{raw: sentiment.LabelPositive},
		recorder:  &memoryRecorder{},
		hook:      hook,
	}
	a, err := NewAnalyzer(Deps{
		Detector:   detector,
		Translator: translate.New(f.backend),
		Emotion:    emotion.NewClassifier(f.scorer),
		Sentiment:  sentiment.NewClassifier(f.sentiment),
		Names:      langname.NewResolver(),
		Recorder:   f.recorder,
		Log:        log,
	})
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	a.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	f.analyzer = a
	return f
}

func isJoyFamily(label string) bool {
	for _, l := range types.JoyFamily {
		if l == label {
			return true
		}
	}
	return false
}

func TestAnalyzeEnglish(t *testing.T) {
	f := newFixture(t, fakeDetector{})
	in := "I am so happy today!"

	res, err := f.analyzer.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.DetectedLanguage != "en" || res.LanguageName != "English" {
		t.Errorf("language = %q (%q)", res.DetectedLanguage, res.LanguageName)
	}
	if res.TranslatedText != in || res.Translated {
		t.Errorf("translated = %q (translated=%v)", res.TranslatedText, res.Translated)
	}
	if f.backend.calls != 0 {
		t.Errorf("translation backend called %d times", f.backend.calls)
	}
	if !isJoyFamily(res.Emotion.Label) || res.Emotion.Score <= 0 {
		t.Errorf("emotion = %s %v", res.Emotion.Label, res.Emotion.Score)
	}
	if res.Emotion.Label != res.Emotion.Ranked[0].Label {
		t.Errorf("top emotion differs from ranked[0]")
	}
	if res.Sentiment.Label != "Positive" || res.Sentiment.Polarity != 1.0 {
		t.Errorf("sentiment = %+v", res.Sentiment)
	}
	if res.ID == "" || !res.AnalyzedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("id=%q analyzedAt=%v", res.ID, res.AnalyzedAt)
	}
	if len(f.recorder.saved) != 1 || f.recorder.saved[0].ID != res.ID {
		t.Errorf("recorder saved %d results", len(f.recorder.saved))
	}
}

func TestAnalyzeEnglishWithDefaultDetector(t *testing.T) {
	f := newFixture(t, langdetect.NewLingua())
	in := "I am so happy today!"

	res, err := f.analyzer.Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.DetectedLanguage != "en" {
		t.Errorf("detected %q for English input", res.DetectedLanguage)
	}
	if res.TranslatedText != in || f.backend.calls != 0 {
		t.Errorf("translated = %q, backend calls = %d", res.TranslatedText, f.backend.calls)
	}
	if res.Sentiment.Label != types.SentimentPositive || res.Sentiment.Polarity != 1.0 {
		t.Errorf("sentiment = %+v", res.Sentiment)
	}
}

func TestAnalyzeNonEnglishClassifiesTranslation(t *testing.T) {
	f := newFixture(t, fakeDetector{codes: map[string]string{tamilGreeting: "ta"}})

	res, err := f.analyzer.Analyze(context.Background(), tamilGreeting)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.DetectedLanguage == "en" {
		t.Fatalf("detected English for Tamil input")
	}
	if res.LanguageName != "Tamil" {
		t.Errorf("language name = %q", res.LanguageName)
	}
	if res.TranslatedText == tamilGreeting || res.TranslatedText != "Hello, how are you?" || !res.Translated {
		t.Errorf("translated text = %q", res.TranslatedText)
	}
	if len(f.scorer.seen) != 1 || f.scorer.seen[0] != "Hello, how are you?" {
		t.Errorf("emotion classifier saw %q", f.scorer.seen)
	}
	if len(f.sentiment.seen) != 1 || f.sentiment.seen[0] != "Hello, how are you?" {
		t.Errorf("sentiment classifier saw %q", f.sentiment.seen)
	}
}

func TestAnalyzeTranslationUnavailableDegrades(t *testing.T) {
	f := newFixture(t, fakeDetector{codes: map[string]string{"hola amigos": "es"}})
	f.backend.err = errors.New("503 from upstream")

	res, err := f.analyzer.Analyze(context.Background(), "hola amigos")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TranslatedText != "hola amigos" || res.Translated {
		t.Errorf("expected original text, got %q", res.TranslatedText)
	}
	if res.TranslationError == "" {
		t.Errorf("translation error not reported")
	}
	if f.scorer.seen[0] != "hola amigos" {
		t.Errorf("classifier saw %q", f.scorer.seen[0])
	}
	entry := f.hook.LastEntry()
	found := false
	for _, e := range f.hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			found = true
		}
	}
	if !found {
		t.Errorf("no warning logged, last entry %v", entry)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		f := newFixture(t, fakeDetector{})
		for _, in := range []string{"", "   ", "\n\t"} {
			if _, err := f.analyzer.Analyze(context.Background(), in); !errors.Is(err, ErrEmptyInput) {
				t.Errorf("Analyze(%q) err = %v", in, err)
			}
		}
	})

	t.Run("detection failure propagates", func(t *testing.T) {
		boom := errors.New("no idea")
		f := newFixture(t, fakeDetector{err: boom})
		_, err := f.analyzer.Analyze(context.Background(), "???")
		var se *StageError
		if !errors.As(err, &se) || se.Stage != StageDetect || !errors.Is(err, boom) {
			t.Errorf("err = %v", err)
		}
		if len(f.recorder.saved) != 0 {
			t.Errorf("failed analysis was recorded")
		}
	})

	t.Run("recorder failure does not fail request", func(t *testing.T) {
		f := newFixture(t, fakeDetector{})
		f.recorder.err = errors.New("firestore down")
		if _, err := f.analyzer.Analyze(context.Background(), "fine"); err != nil {
			t.Errorf("unexpected err: %v", err)
		}
	})
}

func TestNewAnalyzerRequiresDeps(t *testing.T) {
	if _, err := NewAnalyzer(Deps{}); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}
