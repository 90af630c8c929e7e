package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
)

func linea(id string) entity.LineItem {
	return entity.LineItem{ID: id, NetValue: decimal.NewFromInt(10)}
}

// TestDocument_WithLineNoMutaElOriginal las transiciones retornan copias: el
// snapshot anterior queda intacto, que es lo que permite recalcular totales
// sin estado observable de UI.
func TestDocument_WithLineNoMutaElOriginal(t *testing.T) {
	base := entity.Document{ID: "d1"}

	conLinea := base.WithLine(linea("l1"))

	assert.Empty(t, base.Lines, "el documento original no se muta")
	require.Len(t, conLinea.Lines, 1)
}

// TestDocument_WithLineReemplazaPorID agregar una línea con un ID existente la
// reemplaza en su posición (edición de línea en el POS).
func TestDocument_WithLineReemplazaPorID(t *testing.T) {
	doc := entity.Document{}.
		WithLine(linea("l1")).
		WithLine(linea("l2"))

	editada := linea("l1")
	editada.NetValue = decimal.NewFromInt(99)
	doc2 := doc.WithLine(editada)

	require.Len(t, doc2.Lines, 2)
	assert.Equal(t, "l1", doc2.Lines[0].ID, "la línea editada conserva su posición")
	assert.Equal(t, "99", doc2.Lines[0].NetValue.String())
	assert.Equal(t, "10", doc.Lines[0].NetValue.String(), "el snapshot anterior no cambia")
}

// TestDocument_WithoutLineEsIdempotente quitar un ID ausente produce una copia
// equivalente, sin error.
func TestDocument_WithoutLineEsIdempotente(t *testing.T) {
	doc := entity.Document{}.WithLine(linea("l1"))

	sin := doc.WithoutLine("l1")
	assert.Empty(t, sin.Lines)

	igual := doc.WithoutLine("no-existe")
	require.Len(t, igual.Lines, 1)
	assert.Len(t, doc.Lines, 1)
}

// TestAffectationFromCode_MapeoCatalogo07 los códigos onerosos mapean a su
// categoría y los gratuitos colapsan en GRATUITO; un código desconocido
// retorna ok=false.
func TestAffectationFromCode_MapeoCatalogo07(t *testing.T) {
	cases := map[string]entity.AffectationCategory{
		"10": entity.AffectationTaxed,
		"20": entity.AffectationExonerated,
		"30": entity.AffectationUnaffected,
		"13": entity.AffectationFree,
		"21": entity.AffectationFree,
		"31": entity.AffectationFree,
	}
	for code, want := range cases {
		got, ok := entity.AffectationFromCode(code)
		require.True(t, ok, "código %s debe ser válido", code)
		assert.Equal(t, want, got, "código %s", code)
	}

	_, ok := entity.AffectationFromCode("99")
	assert.False(t, ok)
}

// TestAffectationCategory_CodigoIdaYVuelta cada categoría onerosa vuelve a su
// mismo código; GRATUITO serializa como retiro gravado (13).
func TestAffectationCategory_CodigoIdaYVuelta(t *testing.T) {
	assert.Equal(t, "10", entity.AffectationTaxed.SUNATCode())
	assert.Equal(t, "20", entity.AffectationExonerated.SUNATCode())
	assert.Equal(t, "30", entity.AffectationUnaffected.SUNATCode())
	assert.Equal(t, "13", entity.AffectationFree.SUNATCode())

	assert.True(t, entity.AffectationTaxed.Valid())
	assert.False(t, entity.AffectationCategory("OTRA").Valid())
}
