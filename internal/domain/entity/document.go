package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountMode modo de ingreso del descuento global.
type DiscountMode string

const (
	DiscountByAmount     DiscountMode = "MONTO"
	DiscountByPercentage DiscountMode = "PORCENTAJE"
)

// GlobalDiscountPolicy descuento global sobre el subtotal gravado del comprobante.
// InputValue es el valor crudo ingresado por el usuario: un porcentaje si
// Mode es PORCENTAJE, o un monto con IGV incluido si Mode es MONTO.
type GlobalDiscountPolicy struct {
	Enabled    bool
	Mode       DiscountMode
	InputValue decimal.Decimal
}

// DocumentTotals es el snapshot inmutable de totales de un comprobante.
// Lo produce el agregador (internal/domain/billing) en cada cambio y es la
// única fuente de verdad para cobro, impresión y persistencia.
type DocumentTotals struct {
	TaxedBeforeDiscount     decimal.Decimal // subtotal gravado antes del descuento global
	Exonerated              decimal.Decimal
	Unaffected              decimal.Decimal
	Free                    decimal.Decimal // valor comercial de las líneas gratuitas
	EffectiveGlobalDiscount decimal.Decimal // descuento global aplicado (base sin IGV)
	TaxedAfterDiscount      decimal.Decimal
	IGV                     decimal.Decimal
	TaxBase                 decimal.Decimal // TaxedAfterDiscount + Exonerated + Unaffected
	TotalAmount             decimal.Decimal // TaxBase + IGV
	TotalDiscount           decimal.Decimal // global + Σ descuentos de línea
	TotalToPay              decimal.Decimal // igual a TotalAmount salvo percepción/retención
}

// Document es el agregado en edición: lista de líneas, política de descuento y
// tasa de IGV vigente. Es inmutable; cada transición With* retorna una copia
// nueva, de modo que el motor no depende de ningún estado observable de UI.
// Cada documento en edición es una instancia independiente; no hay estado
// global compartido entre documentos.
type Document struct {
	ID           string
	Series       string
	Number       string
	DocType      string // catálogo SUNAT 01 (01 factura, 03 boleta)
	EmissionDate time.Time
	TaxRate      decimal.Decimal
	Lines        []LineItem
	Discount     GlobalDiscountPolicy
}

// WithLine retorna una copia con la línea agregada. Si ya existe una línea con
// el mismo ID, la reemplaza en su posición (edición de línea).
func (d Document) WithLine(line LineItem) Document {
	lines := make([]LineItem, 0, len(d.Lines)+1)
	replaced := false
	for _, l := range d.Lines {
		if l.ID == line.ID {
			lines = append(lines, line)
			replaced = true
			continue
		}
		lines = append(lines, l)
	}
	if !replaced {
		lines = append(lines, line)
	}
	d.Lines = lines
	return d
}

// WithoutLine retorna una copia sin la línea indicada; si el ID no existe la
// copia es equivalente al original.
func (d Document) WithoutLine(lineID string) Document {
	lines := make([]LineItem, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.ID != lineID {
			lines = append(lines, l)
		}
	}
	d.Lines = lines
	return d
}

// WithDiscountPolicy retorna una copia con la política de descuento global.
func (d Document) WithDiscountPolicy(p GlobalDiscountPolicy) Document {
	d.Discount = p
	d.Lines = append([]LineItem(nil), d.Lines...)
	return d
}

// WithTaxRate retorna una copia con la tasa de IGV indicada.
func (d Document) WithTaxRate(rate decimal.Decimal) Document {
	d.TaxRate = rate
	d.Lines = append([]LineItem(nil), d.Lines...)
	return d
}

// FinalizedDocument es el comprobante cerrado: documento, totales y pagos.
// Es el contrato de datos que consume la capa de persistencia/impresión.
type FinalizedDocument struct {
	Document    Document
	Totals      DocumentTotals
	Payments    []Payment
	FinalizedAt time.Time
}
