package langdetect

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"en":      "en",
		"EN":      "en",
		"en-US":   "en",
		"zh_Hant": "zh",
		" ta ":    "ta",
		"":        "",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWhatlangDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "The weather is lovely today and I am going for a long walk in the park with my friends.", "en"},
		{"tamil", "வணக்கம், நீங்கள் எப்படி இருக்கிறீர்கள்?", "ta"},
	}
	d := NewWhatlang()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Detect(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

type fakeSentimentAPI struct {
	resp *languagepb.AnalyzeSentimentResponse
	err  error
}

func (f *fakeSentimentAPI) AnalyzeSentiment(ctx context.Context, req *languagepb.AnalyzeSentimentRequest, opts ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error) {
	return f.resp, f.err
}

func TestCloudDetect(t *testing.T) {
	d := NewCloud(&fakeSentimentAPI{resp: &languagepb.AnalyzeSentimentResponse{LanguageCode: "fr-FR"}})
	got, err := d.Detect(context.Background(), "bonjour tout le monde")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "fr" {
		t.Errorf("Detect = %q, want fr", got)
	}

	d = NewCloud(&fakeSentimentAPI{err: status.Error(codes.InvalidArgument, "unsupported language")})
	if _, err := d.Detect(context.Background(), "???"); !errors.Is(err, ErrUndetermined) {
		t.Errorf("expected ErrUndetermined, got %v", err)
	}

	d = NewCloud(&fakeSentimentAPI{resp: &languagepb.AnalyzeSentimentResponse{}})
	if _, err := d.Detect(context.Background(), "..."); !errors.Is(err, ErrUndetermined) {
		t.Errorf("expected ErrUndetermined for empty code, got %v", err)
	}
}

func TestLinguaDetectShortText(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I am so happy today!", "en"},
		{"I love you", "en"},
		{"Thank you so much!", "en"},
		{"நான் இன்று மிகவும் மகிழ்ச்சியாக இருக்கிறேன்", "ta"},
		{"नमस्ते, आप कैसे हैं?", "hi"},
		{"Estoy muy feliz hoy", "es"},
	}
	d := NewLingua()
	for _, tt := range tests {
		t.Run(tt.want+" "+tt.text, func(t *testing.T) {
			got, err := d.Detect(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLinguaUndetermined(t *testing.T) {
	if _, err := NewLingua().Detect(context.Background(), "1234 5678 !!"); !errors.Is(err, ErrUndetermined) {
		t.Errorf("expected ErrUndetermined, got %v", err)
	}
}

func TestWhatlangStaysInSupportedSet(t *testing.T) {
	supported := map[string]bool{}
	for _, l := range whatlangSupported {
		supported[l.Iso6391()] = true
	}
	d := NewWhatlang()
	for _, text := range []string{"I am so happy today!", "I love you", "I am sad", "hello", "नमस्ते, आप कैसे हैं?"} {
		got, err := d.Detect(context.Background(), text)
		if err != nil {
			if !errors.Is(err, ErrUndetermined) {
				t.Errorf("Detect(%q) err = %v", text, err)
			}
			continue
		}
		if !supported[got] {
			t.Errorf("Detect(%q) = %q, outside the supported set", text, got)
		}
	}
}

func TestWhatlangUndetermined(t *testing.T) {
	if _, err := NewWhatlang().Detect(context.Background(), "1234 5678 !!"); !errors.Is(err, ErrUndetermined) {
		t.Errorf("expected ErrUndetermined, got %v", err)
	}
}
