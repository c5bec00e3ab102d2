package service

import (
	"context"

	"descu/internal/domain/entity"
)

// ListingSuggestion is pre-filled submission metadata produced by the
// external image-analysis service. The core accepts it as an ordinary
// draft and performs no validation of its correctness.
type ListingSuggestion struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    entity.Category     `json:"category"`
	Price       int64               `json:"suggestedPrice"`
	Delivery    entity.DeliveryMode `json:"suggestedDeliveryType"`
}

// SuggestionService analyzes a listing photo and proposes metadata for
// the submission form. Implementations may be unavailable; callers must
// treat failure as non-fatal and let the submission proceed with
// user-entered values.
type SuggestionService interface {
	// SuggestFromImage analyzes a base64-encoded JPEG image.
	SuggestFromImage(ctx context.Context, imageBase64 string, locale entity.Locale) (*ListingSuggestion, error)
}
