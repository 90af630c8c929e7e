// Package billing contiene los servicios de dominio puros del motor de
// totales: el pricer de líneas y el agregador de totales del comprobante.
// Ninguna función de este paquete hace I/O ni retorna error: las entradas
// fuera de dominio se acotan (clamp) en lugar de rechazarse, porque un POS no
// puede bloquearse por una pulsación inválida.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// PriceInput entrada cruda de una línea, ya parseada a decimal por la capa de
// aplicación (texto no numérico o negativo llega como cero).
type PriceInput struct {
	ID                  string
	Description         string
	Quantity            decimal.Decimal
	UnitValueWithoutTax decimal.Decimal
	Affectation         entity.AffectationCategory
	ItemDiscount        decimal.Decimal
	TaxRate             decimal.Decimal
}

// Price calcula los valores derivados de una línea: valor bruto, descuento
// efectivo (acotado al valor bruto, nunca produce neto negativo), IGV según la
// afectación y total de línea. Los montos se redondean a 2 decimales.
//
// Para líneas GRATUITAS el total de línea conserva el valor comercial
// (NetValue) solo como referencia de impresión; no se cobra.
func Price(in PriceInput) entity.LineItem {
	qty := clampNonNegative(in.Quantity)
	unitValue := clampNonNegative(in.UnitValueWithoutTax)
	discount := clampNonNegative(in.ItemDiscount)
	rate := clampNonNegative(in.TaxRate)

	gross := qty.Mul(unitValue).Round(2)
	effDiscount := decimal.Min(discount, gross)
	net := gross.Sub(effDiscount)

	tax := decimal.Zero
	total := net
	if in.Affectation == entity.AffectationTaxed {
		tax = net.Mul(rate).Round(2)
		total = net.Add(tax)
	}

	pct := decimal.Zero
	if gross.IsPositive() {
		pct = effDiscount.Div(gross).Mul(oneHundred).Round(2)
	}

	unitPrice := unitValue
	if in.Affectation == entity.AffectationTaxed {
		unitPrice = unitValue.Mul(decimal.NewFromInt(1).Add(rate)).Round(2)
	}

	return entity.LineItem{
		ID:                  in.ID,
		Description:         in.Description,
		Quantity:            qty,
		UnitValueWithoutTax: unitValue,
		UnitPriceWithTax:    unitPrice,
		Affectation:         in.Affectation,
		ItemDiscount:        discount,
		TaxRate:             rate,
		GrossValue:          gross,
		EffectiveDiscount:   effDiscount,
		NetValue:            net,
		Tax:                 tax,
		LineTotal:           total,
		DiscountPctApplied:  pct,
	}
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
