package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
)

// Aggregate recalcula los totales del comprobante desde cero a partir de la
// lista de líneas, la política de descuento global y la tasa de IGV vigente.
// El recálculo es total (no incremental) y puro: las mismas entradas producen
// siempre el mismo snapshot, requisito para persistencia reproducible y para
// poder invocarlo concurrentemente desde contextos de solo lectura.
//
// El descuento global aplica únicamente sobre el subtotal GRAVADO:
//   - PORCENTAJE: se acota a 100 y se aplica sobre el subtotal antes de descuento.
//   - MONTO: la UI lo ingresa con IGV incluido, así que primero se divide entre
//     (1 + tasa) para llevarlo a base sin IGV, y luego se acota al subtotal.
//
// Las líneas GRATUITAS acumulan su valor comercial en Free pero no participan
// de TaxBase, TotalAmount ni TotalToPay.
func Aggregate(lines []entity.LineItem, policy entity.GlobalDiscountPolicy, taxRate decimal.Decimal) entity.DocumentTotals {
	rate := clampNonNegative(taxRate)

	var taxedBefore, exonerated, unaffected, free, lineDiscounts decimal.Decimal
	for _, l := range lines {
		lineDiscounts = lineDiscounts.Add(l.EffectiveDiscount)
		switch l.Affectation {
		case entity.AffectationTaxed:
			taxedBefore = taxedBefore.Add(l.NetValue)
		case entity.AffectationExonerated:
			exonerated = exonerated.Add(l.NetValue)
		case entity.AffectationUnaffected:
			unaffected = unaffected.Add(l.NetValue)
		case entity.AffectationFree:
			free = free.Add(l.NetValue)
		}
	}

	globalDiscount := resolveGlobalDiscount(policy, taxedBefore, rate)

	taxedAfter := taxedBefore.Sub(globalDiscount)
	if taxedAfter.IsNegative() {
		taxedAfter = decimal.Zero
	}
	igv := taxedAfter.Mul(rate).Round(2)
	taxBase := taxedAfter.Add(exonerated).Add(unaffected)
	totalAmount := taxBase.Add(igv)

	return entity.DocumentTotals{
		TaxedBeforeDiscount:     taxedBefore,
		Exonerated:              exonerated,
		Unaffected:              unaffected,
		Free:                    free,
		EffectiveGlobalDiscount: globalDiscount,
		TaxedAfterDiscount:      taxedAfter,
		IGV:                     igv,
		TaxBase:                 taxBase,
		TotalAmount:             totalAmount,
		TotalDiscount:           globalDiscount.Add(lineDiscounts),
		TotalToPay:              totalAmount,
	}
}

// AggregateDocument es el atajo sobre el agregado en edición.
func AggregateDocument(doc entity.Document) entity.DocumentTotals {
	return Aggregate(doc.Lines, doc.Discount, doc.TaxRate)
}

// resolveGlobalDiscount resuelve el valor crudo de la política a un monto en
// base sin IGV, acotado al subtotal gravado.
func resolveGlobalDiscount(policy entity.GlobalDiscountPolicy, taxedBefore, rate decimal.Decimal) decimal.Decimal {
	if !policy.Enabled {
		return decimal.Zero
	}
	input := clampNonNegative(policy.InputValue)

	var amount decimal.Decimal
	switch policy.Mode {
	case entity.DiscountByPercentage:
		pct := decimal.Min(input, oneHundred)
		amount = taxedBefore.Mul(pct).Div(oneHundred).Round(2)
	case entity.DiscountByAmount:
		// El monto ingresado incluye IGV; se convierte a base sin IGV.
		amount = input.Div(decimal.NewFromInt(1).Add(rate)).Round(2)
	default:
		return decimal.Zero
	}
	return decimal.Min(amount, taxedBefore)
}
