// Package translate wraps the Google Translate API used by the admin
// translate-assist action (native → English).
package translate

import (
	"context"
	"fmt"

	"github.com/pearlatelier/pearlsite-go/pkg/config"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// Translator converts source-language text to English.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// GoogleTranslator is the Google Translate v2 implementation.
type GoogleTranslator struct {
	service *translate.Service
	source  string
	target  string
}

// NewGoogleTranslator creates a translator from configuration. A
// missing API key is an error; translate-assist is optional and the
// caller decides how to degrade.
func NewGoogleTranslator(ctx context.Context) (*GoogleTranslator, error) {
	if config.TranslateAPIKey == "" {
		return nil, fmt.Errorf("TRANSLATE_API_KEY environment variable is required")
	}

	service, err := translate.NewService(ctx, option.WithAPIKey(config.TranslateAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}

	return &GoogleTranslator{
		service: service,
		source:  "zh-CN",
		target:  "en",
	}, nil
}

// Translate converts one text. Empty input translates to empty output
// without a network call.
func (t *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	call := t.service.Translations.List([]string{text}, t.target).
		Source(t.source).
		Format("text").
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("translation response was empty")
	}
	return resp.Translations[0].TranslatedText, nil
}
