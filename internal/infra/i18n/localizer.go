// Package i18n contains the embedded localization tables for category
// labels and UI strings. Categories are stored as invariant keys; this
// package owns their per-locale display labels, which the query filter
// uses for its reverse lookup.
package i18n

import (
	"descu/internal/domain/entity"
	"descu/internal/domain/service"
)

var categoryLabels = map[entity.Locale]map[entity.Category]string{
	entity.LocaleSpanish: {
		entity.CategoryElectronics: "Electrónica",
		entity.CategoryFurniture:   "Muebles",
		entity.CategoryClothing:    "Ropa",
		entity.CategoryBooks:       "Libros",
		entity.CategorySports:      "Deportes",
		entity.CategoryVehicles:    "Vehículos",
		entity.CategoryRealEstate:  "Inmuebles",
		entity.CategoryServices:    "Servicios",
		entity.CategoryOther:       "Otros",
	},
	entity.LocaleEnglish: {
		entity.CategoryElectronics: "Electronics",
		entity.CategoryFurniture:   "Furniture",
		entity.CategoryClothing:    "Clothing",
		entity.CategoryBooks:       "Books",
		entity.CategorySports:      "Sports",
		entity.CategoryVehicles:    "Vehicles",
		entity.CategoryRealEstate:  "Real Estate",
		entity.CategoryServices:    "Services",
		entity.CategoryOther:       "Other",
	},
	entity.LocaleChinese: {
		entity.CategoryElectronics: "电子产品",
		entity.CategoryFurniture:   "家具",
		entity.CategoryClothing:    "服装",
		entity.CategoryBooks:       "图书",
		entity.CategorySports:      "运动",
		entity.CategoryVehicles:    "汽车",
		entity.CategoryRealEstate:  "房产",
		entity.CategoryServices:    "服务",
		entity.CategoryOther:       "其他",
	},
}

var uiStrings = map[entity.Locale]map[string]string{
	entity.LocaleSpanish: {
		"list.header":      "Cerca de ti",
		"list.empty":       "Aún no hay artículos",
		"list.no_results":  "Sin resultados",
		"list.loc_denied":  "Ubicación no disponible, mostrando CDMX",
		"list.loc_success": "Ubicación detectada",
	},
	entity.LocaleEnglish: {
		"list.header":      "Near you",
		"list.empty":       "No items yet",
		"list.no_results":  "No results",
		"list.loc_denied":  "Location unavailable, showing Mexico City",
		"list.loc_success": "Location detected",
	},
	entity.LocaleChinese: {
		"list.header":      "附近的商品",
		"list.empty":       "暂无商品",
		"list.no_results":  "没有找到结果",
		"list.loc_denied":  "无法获取位置，显示墨西哥城",
		"list.loc_success": "已定位",
	},
}

type localizer struct{}

// NewLocalizer is the constructor for the embedded-table localizer.
func NewLocalizer() service.Localizer {
	return &localizer{}
}

// CategoryLabel returns the localized display label for a category key.
// Unknown locales fall back to the default locale's table.
func (l *localizer) CategoryLabel(category entity.Category, locale entity.Locale) string {
	labels := categoryLabels[locale.OrDefault()]
	if label, ok := labels[category]; ok {
		return label
	}

	return category.String()
}

// Text returns the localized UI string for a key, falling back to the
// default locale and finally to the key itself.
func (l *localizer) Text(key string, locale entity.Locale) string {
	if text, ok := uiStrings[locale.OrDefault()][key]; ok {
		return text
	}
	if text, ok := uiStrings[entity.DefaultLocale][key]; ok {
		return text
	}

	return key
}

// Currency returns the ISO currency code used for listings in a locale.
func (l *localizer) Currency(locale entity.Locale) string {
	if locale.OrDefault() == entity.LocaleChinese {
		return "CNY"
	}

	return "MXN"
}

// LocationName returns the default human-readable place name for a locale.
func (l *localizer) LocationName(locale entity.Locale) string {
	if locale.OrDefault() == entity.LocaleSpanish {
		return "CDMX"
	}

	return "Nearby"
}
