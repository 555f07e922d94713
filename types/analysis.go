package types

import "time"

// AnalysisResult is everything one pass of the pipeline produced for a single input.
type AnalysisResult struct {
	ID               string          `firestore:"id" json:"id"`
	Input            string          `firestore:"input" json:"input"`
	DetectedLanguage string          `firestore:"detectedLanguage" json:"detectedLanguage"`
	LanguageName     string          `firestore:"languageName" json:"languageName"`
	TranslatedText   string          `firestore:"translatedText" json:"translatedText"`
	Translated       bool            `firestore:"translated" json:"translated"`
	TranslationError string          `firestore:"translationError,omitempty" json:"translationError,omitempty"`
	Emotion          EmotionResult   `firestore:"emotion" json:"emotion"`
	Sentiment        SentimentResult `firestore:"sentiment" json:"sentiment"`
	AnalyzedAt       time.Time       `firestore:"analyzedAt" json:"analyzedAt"`
}

// Sentiment labels. Unknown is reported when the model emits an id outside the table.
const (
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
	SentimentPositive = "Positive"
	SentimentUnknown  = "Unknown"
)

type SentimentResult struct {
	Label    string  `firestore:"label" json:"label"`
	Polarity float64 `firestore:"polarity" json:"polarity"`
	// RawLabel is the class id the backend returned, e.g. LABEL_2.
	RawLabel string `firestore:"rawLabel" json:"rawLabel"`
}

// Feedback is a free-text comment forwarded to the feedback form.
type Feedback struct {
	Text string `json:"feedback"`
}
