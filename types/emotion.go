package types

import "strings"

// LabelScore is one (emotion, probability) pair.
type LabelScore struct {
	Label string  `firestore:"label" json:"label"`
	Score float64 `firestore:"score" json:"score"`
}

// EmotionResult holds the ranked emotion distribution. Label and Score always
// equal Ranked[0]; Labels and Scores are the same ranking as parallel slices.
type EmotionResult struct {
	Label  string       `firestore:"label" json:"label"`
	Score  float64      `firestore:"score" json:"score"`
	Emoji  string       `firestore:"emoji" json:"emoji"`
	Labels []string     `firestore:"labels" json:"labels"`
	Scores []float64    `firestore:"scores" json:"scores"`
	Ranked []LabelScore `firestore:"ranked" json:"ranked"`
}

// EmotionLabels is the GoEmotions vocabulary.
var EmotionLabels = []string{
	"admiration", "amusement", "anger", "annoyance", "approval", "caring",
	"confusion", "curiosity", "desire", "disappointment", "disapproval", "disgust",
	"embarrassment", "excitement", "fear", "gratitude", "grief", "joy",
	"love", "nervousness", "optimism", "pride", "realization", "relief",
	"remorse", "sadness", "surprise", "neutral",
}

var emotionLabelSet = func() map[string]bool {
	m := make(map[string]bool, len(EmotionLabels))
	for _, l := range EmotionLabels {
		m[l] = true
	}
	return m
}()

func IsEmotionLabel(label string) bool {
	return emotionLabelSet[label]
}

// JoyFamily are the labels counted as a happy reading of the text.
var JoyFamily = []string{"joy", "amusement", "excitement", "love", "optimism", "gratitude", "admiration", "pride", "relief", "approval"}

var emotionEmojis = map[string]string{
	"joy": "😊", "sadness": "😢", "anger": "😠", "fear": "😨", "surprise": "😲",
	"disgust": "🤢", "love": "❤️", "neutral": "😐", "admiration": "👏",
	"gratitude": "🙏", "realization": "💡", "approval": "👍", "disapproval": "👎",
	"curiosity": "❓",
}

// EmotionEmoji returns the display hint for a label, 🤔 when there is none.
func EmotionEmoji(label string) string {
	if e, ok := emotionEmojis[strings.ToLower(label)]; ok {
		return e
	}
	return "🤔"
}
