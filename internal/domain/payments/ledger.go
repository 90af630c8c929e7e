package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pro/internal/domain"
	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
)

// DefaultCreditDueWindowDays ventana por defecto para el vencimiento de una
// cuota de crédito, contada desde hoy.
const DefaultCreditDueWindowDays = 90

// Ledger libro de pagos de un comprobante. Se abre contra un TotalToPay fijo
// (el snapshot de totales ya cerrado) y acumula pagos parciales hasta cubrirlo.
// Nunca admite sobrepago: la invariante Σ pagos ≤ TotalToPay se garantiza en
// la inserción y no necesita reconciliación posterior.
//
// El libro sigue el modelo de escritor único del documento en edición: las
// mutaciones (AddPayment/RemovePayment) no se sincronizan entre goroutines,
// pero Summary y SuggestedAmount son funciones puras del estado y pueden
// invocarse repetidamente desde contextos de solo lectura.
type Ledger struct {
	totalToPay   decimal.Decimal
	emissionDate time.Time
	dueWindow    int
	catalog      *Catalog
	now          func() time.Time
	payments     []entity.Payment
}

// LedgerOptions parámetros de apertura del libro.
type LedgerOptions struct {
	EmissionDate        time.Time        // fecha de emisión del comprobante (fecha por defecto de los pagos contado)
	CreditDueWindowDays int              // N de la ventana [hoy, hoy+N]; 0 usa DefaultCreditDueWindowDays
	Now                 func() time.Time // reloj inyectable; nil usa time.Now
}

// NewLedger abre el libro contra el total a pagar del comprobante.
func NewLedger(totalToPay decimal.Decimal, catalog *Catalog, opts LedgerOptions) *Ledger {
	if opts.CreditDueWindowDays <= 0 {
		opts.CreditDueWindowDays = DefaultCreditDueWindowDays
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.EmissionDate.IsZero() {
		opts.EmissionDate = opts.Now()
	}
	return &Ledger{
		totalToPay:   totalToPay,
		emissionDate: opts.EmissionDate,
		dueWindow:    opts.CreditDueWindowDays,
		catalog:      catalog,
		now:          opts.Now,
	}
}

// AddPaymentInput entrada para registrar un pago.
type AddPaymentInput struct {
	MethodID string
	Amount   decimal.Decimal
	Note     string     // solo medios contado; se descarta en crédito
	DueDate  *time.Time // obligatorio en crédito; se descarta en contado
}

// AddPayment registra un pago. Rechaza con error tipado (no fatal) los montos
// no positivos, los que excederían el saldo pendiente, los medios desconocidos
// y las cuotas de crédito sin vencimiento dentro de la ventana [hoy, hoy+N].
// En éxito retorna el pago con su ID asignado.
func (l *Ledger) AddPayment(in AddPaymentInput) (*entity.Payment, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if in.Amount.GreaterThan(l.remaining()) {
		return nil, domain.ErrExceedsRemaining
	}
	method, ok := l.catalog.Lookup(in.MethodID)
	if !ok {
		return nil, domain.ErrUnknownPaymentMethod
	}

	p := entity.Payment{
		ID:       uuid.New().String(),
		MethodID: method.ID,
		Amount:   in.Amount,
	}
	if method.IsCredit {
		if in.DueDate == nil {
			return nil, domain.ErrDueDateOutOfRange
		}
		today := dateOnly(l.now())
		limit := today.AddDate(0, 0, l.dueWindow)
		due := dateOnly(*in.DueDate)
		if due.Before(today) || due.After(limit) {
			return nil, domain.ErrDueDateOutOfRange
		}
		p.Date = today
		p.DueDate = &due
	} else {
		p.Date = l.emissionDate
		p.Note = in.Note
	}

	l.payments = append(l.payments, p)
	return &p, nil
}

// RemovePayment elimina el pago indicado. Es idempotente: si el ID no existe
// no hace nada.
func (l *Ledger) RemovePayment(id string) {
	for i, p := range l.payments {
		if p.ID == id {
			l.payments = append(l.payments[:i], l.payments[i+1:]...)
			return
		}
	}
}

// Payments retorna los pagos registrados en orden de inserción (copia).
func (l *Ledger) Payments() []entity.Payment {
	return append([]entity.Payment(nil), l.payments...)
}

// Summary resume el estado actual: función pura del total y la lista de pagos.
// El comprobante puede finalizarse solo cuando IsComplete es verdadero.
func (l *Ledger) Summary() entity.PaymentSummary {
	paid := decimal.Zero
	for _, p := range l.payments {
		paid = paid.Add(p.Amount)
	}
	remaining := l.totalToPay.Sub(paid)
	return entity.PaymentSummary{
		TotalAmount: l.totalToPay,
		TotalPaid:   paid,
		Remaining:   remaining,
		IsComplete:  remaining.LessThanOrEqual(decimal.Zero),
	}
}

// SuggestedAmount monto sugerido para el siguiente pago: el saldo pendiente,
// nunca negativo. La UI lo usa para precargar el campo de monto.
func (l *Ledger) SuggestedAmount() decimal.Decimal {
	r := l.remaining()
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// TotalToPay total contra el que se abrió el libro.
func (l *Ledger) TotalToPay() decimal.Decimal {
	return l.totalToPay
}

func (l *Ledger) remaining() decimal.Decimal {
	return l.Summary().Remaining
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
