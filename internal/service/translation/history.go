package translation

import (
	"context"
	"fmt"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
)

// RecentTranslations lists logged translations, newest first.
func (s *Service) RecentTranslations(ctx context.Context, input HistoryInput) ([]domain.TranslationLog, error) {
	if s.logs == nil {
		return nil, ErrLogDisabled
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.TranslationLogFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	// Validate has already rejected unparsable codes.
	if input.SourceLang != "" {
		filter.SourceLanguage, _ = domain.ParseLanguage(input.SourceLang)
	}
	if input.TargetLang != "" {
		filter.TargetLanguage, _ = domain.ParseLanguage(input.TargetLang)
	}

	logs, err := s.logs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list translation logs: %w", err)
	}
	return logs, nil
}
