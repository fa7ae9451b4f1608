package translation

import "github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"

// TranslateResult is the outcome of a translation request.
type TranslateResult struct {
	Translation string
	Direction   domain.Direction
}
