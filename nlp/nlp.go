package nlp

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// languageClient a singleton languageClient instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
	clientErr      error
)

// ErrUnsupportedText is returned when the API rejects the document, typically because
// its language is not supported.
var ErrUnsupportedText = errors.New("natural language API rejected the text")

// SentimentAPI is the part of *language.Client this package uses.
type SentimentAPI interface {
	AnalyzeSentiment(ctx context.Context, req *languagepb.AnalyzeSentimentRequest, opts ...gax.CallOption) (*languagepb.AnalyzeSentimentResponse, error)
}

// Sentiment is the document level result of AnalyzeSentiment.
type Sentiment struct {
	Magnitude    float32 `json:"magnitude"`
	Score        float32 `json:"score"`
	LanguageCode string  `json:"languageCode"`
}

func AnalyzeSentiment(ctx context.Context, client SentimentAPI, text string) (Sentiment, error) {
	var sentiment Sentiment
	req := &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeSentiment(ctx, req)
	if err != nil {
		if status.Code(err) == codes.InvalidArgument {
			return sentiment, fmt.Errorf("%w: %v", ErrUnsupportedText, err)
		}
		return sentiment, fmt.Errorf("AnalyzeSentiment request error: %w", err)
	}

	if resp.DocumentSentiment != nil {
		sentiment.Score = resp.DocumentSentiment.Score
		sentiment.Magnitude = resp.DocumentSentiment.Magnitude
	}
	sentiment.LanguageCode = resp.LanguageCode

	return sentiment, nil
}

// InitLanguageClient initializes and returns a language client from base64 encoded credentials.
func InitLanguageClient(ctx context.Context, encodedCreds string) (*language.Client, error) {
	clientOnce.Do(func() {
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = fmt.Errorf("decode natural language credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, err = language.NewClient(ctx, opt)
		if err != nil {
			clientErr = fmt.Errorf("create natural language client: %w", err)
		}
	})

	return languageClient, clientErr
}

func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}
