package services

import (
	"context"
	"fmt"

	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/observability/logging"
	"github.com/pearlatelier/pearlsite-go/internal/infrastructure/translate"
)

// TranslateService exposes machine translation to the admin editors
type TranslateService struct {
	logger     *logging.ChanneledLogger
	translator translate.Translator
}

// NewTranslateService creates a new translate service. The translator may
// be nil when no API key is configured.
func NewTranslateService(logger *logging.ChanneledLogger, translator translate.Translator) *TranslateService {
	return &TranslateService{logger: logger, translator: translator}
}

// Enabled reports whether a translation backend is configured
func (s *TranslateService) Enabled() bool {
	return s.translator != nil
}

// Translate converts Chinese source text to English
func (s *TranslateService) Translate(ctx context.Context, text string) (string, error) {
	if s.translator == nil {
		return "", fmt.Errorf("translation is not configured")
	}
	translated, err := s.translator.Translate(ctx, text)
	if err != nil {
		s.logger.Content().Error("Translation failed", "error", err.Error())
		return "", err
	}
	return translated, nil
}
