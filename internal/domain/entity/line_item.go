package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pro/pkg/sunat"
)

// AffectationCategory clasifica una línea de venta según el tratamiento del IGV
// (catálogo SUNAT 07, colapsado a las cuatro categorías que afectan el cobro).
type AffectationCategory string

const (
	AffectationTaxed      AffectationCategory = "GRAVADO"
	AffectationExonerated AffectationCategory = "EXONERADO"
	AffectationUnaffected AffectationCategory = "INAFECTO"
	AffectationFree       AffectationCategory = "GRATUITO"
)

// AffectationFromCode traduce un código del catálogo SUNAT 07 a su categoría.
// Las variantes gratuitas (11-16, 21, 31-36) colapsan todas en GRATUITO.
// Retorna ok=false para códigos desconocidos; el llamador decide qué hacer.
func AffectationFromCode(code string) (AffectationCategory, bool) {
	if !sunat.ValidAffectationCodes[code] {
		return "", false
	}
	if sunat.IsGratuita(code) {
		return AffectationFree, true
	}
	switch code {
	case sunat.AffectationGravadoOnerosa:
		return AffectationTaxed, true
	case sunat.AffectationExoneradoOnerosa:
		return AffectationExonerated, true
	case sunat.AffectationInafectoOnerosa:
		return AffectationUnaffected, true
	}
	return "", false
}

// SUNATCode retorna el código onerosa/gratuita del catálogo 07 para la categoría.
func (c AffectationCategory) SUNATCode() string {
	switch c {
	case AffectationTaxed:
		return sunat.AffectationGravadoOnerosa
	case AffectationExonerated:
		return sunat.AffectationExoneradoOnerosa
	case AffectationUnaffected:
		return sunat.AffectationInafectoOnerosa
	case AffectationFree:
		return sunat.AffectationGravadoGratuito
	}
	return ""
}

// Valid indica si la categoría es una de las cuatro conocidas.
func (c AffectationCategory) Valid() bool {
	switch c {
	case AffectationTaxed, AffectationExonerated, AffectationUnaffected, AffectationFree:
		return true
	}
	return false
}

// LineItem representa una línea de venta con sus valores derivados ya calculados.
// Los campos derivados los llena el pricer (internal/domain/billing); el resto
// del motor los trata como de solo lectura.
type LineItem struct {
	ID                  string
	Description         string
	Quantity            decimal.Decimal
	UnitValueWithoutTax decimal.Decimal // valor unitario sin IGV
	UnitPriceWithTax    decimal.Decimal // precio unitario con IGV (referencial)
	Affectation         AffectationCategory
	ItemDiscount        decimal.Decimal // descuento por línea, en unidades monetarias
	TaxRate             decimal.Decimal // fracción, ej. 0.18

	// Derivados (calculados por el pricer).
	GrossValue         decimal.Decimal // Quantity × UnitValueWithoutTax
	EffectiveDiscount  decimal.Decimal // min(ItemDiscount, GrossValue)
	NetValue           decimal.Decimal // GrossValue − EffectiveDiscount
	Tax                decimal.Decimal // NetValue × TaxRate solo si GRAVADO
	LineTotal          decimal.Decimal // NetValue + Tax; valor referencial si GRATUITO
	DiscountPctApplied decimal.Decimal // EffectiveDiscount / GrossValue × 100
}

// Billable indica si la línea participa del total a cobrar. Las líneas
// gratuitas conservan su valor comercial solo para reporte e impresión.
func (li LineItem) Billable() bool {
	return li.Affectation != AffectationFree
}
