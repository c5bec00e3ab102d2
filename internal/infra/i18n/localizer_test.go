package i18n

import (
	"testing"

	"descu/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestLocalizer_CategoryLabel(t *testing.T) {
	l := NewLocalizer()

	assert.Equal(t, "Muebles", l.CategoryLabel(entity.CategoryFurniture, entity.LocaleSpanish))
	assert.Equal(t, "Furniture", l.CategoryLabel(entity.CategoryFurniture, entity.LocaleEnglish))
	assert.Equal(t, "家具", l.CategoryLabel(entity.CategoryFurniture, entity.LocaleChinese))
}

func TestLocalizer_CategoryLabelFallsBackToDefaultLocale(t *testing.T) {
	l := NewLocalizer()

	assert.Equal(t, "Vehículos", l.CategoryLabel(entity.CategoryVehicles, entity.Locale("fr")))
}

func TestLocalizer_CategoryLabelUnknownCategoryReturnsKey(t *testing.T) {
	l := NewLocalizer()

	assert.Equal(t, "gadgets", l.CategoryLabel(entity.Category("gadgets"), entity.LocaleSpanish))
}

func TestLocalizer_Text(t *testing.T) {
	l := NewLocalizer()

	assert.Equal(t, "Near you", l.Text("list.header", entity.LocaleEnglish))
	assert.Equal(t, "Cerca de ti", l.Text("list.header", entity.Locale("pt")))
	assert.Equal(t, "missing.key", l.Text("missing.key", entity.LocaleEnglish))
}

func TestLocalizer_Currency(t *testing.T) {
	l := NewLocalizer()

	assert.Equal(t, "MXN", l.Currency(entity.LocaleSpanish))
	assert.Equal(t, "MXN", l.Currency(entity.LocaleEnglish))
	assert.Equal(t, "CNY", l.Currency(entity.LocaleChinese))
	assert.Equal(t, "MXN", l.Currency(entity.Locale("fr")))
}

func TestLocalizer_LocationName(t *testing.T) {
	l := NewLocalizer()

	assert.Equal(t, "CDMX", l.LocationName(entity.LocaleSpanish))
	assert.Equal(t, "Nearby", l.LocationName(entity.LocaleEnglish))
	assert.Equal(t, "Nearby", l.LocationName(entity.LocaleChinese))
	assert.Equal(t, "CDMX", l.LocationName(entity.Locale("fr")))
}
