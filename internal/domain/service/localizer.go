package service

import (
	"descu/internal/domain/entity"
)

// Localizer resolves user-facing strings for a locale. The catalog core
// only ever compares the returned strings (category-label reverse lookup
// in the query filter); it does not interpret them.
type Localizer interface {
	// CategoryLabel returns the localized display label for a category key.
	CategoryLabel(category entity.Category, locale entity.Locale) string

	// Text returns the localized string for an arbitrary UI key, falling
	// back to the default locale when the key or locale is unknown.
	Text(key string, locale entity.Locale) string

	// Currency returns the ISO currency code used for listings in a locale.
	Currency(locale entity.Locale) string

	// LocationName returns the default human-readable place name for a locale.
	LocationName(locale entity.Locale) string
}
