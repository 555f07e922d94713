package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	English    = "en"
	AutoSource = "auto"
)

// ErrTranslationUnavailable matches every failure of the translation backend.
var ErrTranslationUnavailable = errors.New("translation unavailable")

var errEmptyTranslation = errors.New("backend returned an empty translation")

// UnavailableError carries the backend failure behind ErrTranslationUnavailable.
type UnavailableError struct {
	Backend string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s translation unavailable: %v", e.Backend, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrTranslationUnavailable }

// Backend is a machine translation service.
type Backend interface {
	Name() string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Translator turns detected non-English text into English.
type Translator struct {
	backend Backend
}

func New(backend Backend) *Translator {
	return &Translator{backend: backend}
}

// Translate returns the English text and the detected code. English input is
// returned unchanged without touching the backend.
func (t *Translator) Translate(ctx context.Context, text, detectedCode string) (string, string, error) {
	if detectedCode == English {
		return text, English, nil
	}

	out, err := t.backend.Translate(ctx, text, AutoSource, English)
	if err != nil {
		return "", detectedCode, &UnavailableError{Backend: t.backend.Name(), Err: err}
	}
	if strings.TrimSpace(out) == "" {
		return "", detectedCode, &UnavailableError{Backend: t.backend.Name(), Err: errEmptyTranslation}
	}
	return out, detectedCode, nil
}
