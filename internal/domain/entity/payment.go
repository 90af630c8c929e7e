package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment es un pago parcial registrado contra el total de un comprobante.
// Si el medio de pago es crédito lleva DueDate (fecha de vencimiento de la
// cuota) y la nota queda vacía; en los demás medios lleva nota opcional y la
// fecha por defecto es la de emisión del comprobante.
type Payment struct {
	ID       string
	MethodID string
	Amount   decimal.Decimal
	Note     string
	Date     time.Time
	DueDate  *time.Time
}

// PaymentSummary estado derivado del libro de pagos en un momento dado.
type PaymentSummary struct {
	TotalAmount decimal.Decimal
	TotalPaid   decimal.Decimal
	Remaining   decimal.Decimal
	IsComplete  bool
}
