package db

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"go-emotive/types"
)

const analysesCollection = "analyses"

// DefaultLimit is used when Recent is called with a non-positive limit.
const DefaultLimit = 20

var ErrDisabled = errors.New("analysis history is disabled")

// Store keeps finished analyses, newest first.
type Store interface {
	Save(ctx context.Context, result types.AnalysisResult) error
	Recent(ctx context.Context, limit int) ([]types.AnalysisResult, error)
}

// HashString hashes a given string using SHA-256 and returns its hex representation.
func HashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Singleton Firestore client.
var (
	client     *firestore.Client
	clientErr  error
	clientOnce sync.Once
)

// InitFirestore builds the shared Firestore client from base64 encoded
// service account JSON.
func InitFirestore(ctx context.Context, encodedCreds string) (*firestore.Client, error) {
	clientOnce.Do(func() {
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = fmt.Errorf("failed to decode Firestore credentials: %w", err)
			return
		}

		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(creds))
		if err != nil {
			clientErr = fmt.Errorf("error initializing Firebase app: %w", err)
			return
		}

		client, clientErr = app.Firestore(ctx)
		if clientErr != nil {
			clientErr = fmt.Errorf("error getting Firestore client: %w", clientErr)
		}
	})

	return client, clientErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}

// FirestoreStore persists analyses in the "analyses" collection keyed by
// the hash of the result ID.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Save(ctx context.Context, result types.AnalysisResult) error {
	ref := s.client.Collection(analysesCollection).Doc(HashString(result.ID))
	if _, err := ref.Set(ctx, result); err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", result.ID, err)
	}
	return nil
}

func (s *FirestoreStore) Recent(ctx context.Context, limit int) ([]types.AnalysisResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	iter := s.client.Collection(analysesCollection).
		OrderBy("analyzedAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var results []types.AnalysisResult
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating analyses: %w", err)
		}

		var r types.AnalysisResult
		if err := doc.DataTo(&r); err != nil {
			return nil, fmt.Errorf("error converting analysis %s: %w", doc.Ref.ID, err)
		}
		results = append(results, r)
	}
	return results, nil
}
