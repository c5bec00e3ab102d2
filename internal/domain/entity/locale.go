// Package entity contains the core business objects of the project.
package entity

// Locale identifies the viewer's language.
type Locale string

const (
	LocaleSpanish Locale = "es"
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

// DefaultLocale is the fallback for unsupported locales.
const DefaultLocale = LocaleSpanish

// String returns the string representation of the Locale.
func (l Locale) String() string {
	return string(l)
}

// IsSupported checks if the Locale has localization pools.
func (l Locale) IsSupported() bool {
	switch l {
	case LocaleSpanish, LocaleEnglish, LocaleChinese:
		return true
	default:
		return false
	}
}

// OrDefault returns the locale itself when supported, DefaultLocale otherwise.
func (l Locale) OrDefault() Locale {
	if l.IsSupported() {
		return l
	}

	return DefaultLocale
}
