package payments_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-pro/internal/domain"
	"github.com/jhoicas/facturacion-pro/internal/domain/payments"
	"github.com/jhoicas/facturacion-pro/pkg/sunat"
)

var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// nuevoLibro abre un libro contra 106.20 con reloj fijo y catálogo por defecto.
func nuevoLibro(t *testing.T) *payments.Ledger {
	t.Helper()
	return payments.NewLedger(dec("106.20"), payments.DefaultCatalog(), payments.LedgerOptions{
		EmissionDate: fixedNow,
		Now:          func() time.Time { return fixedNow },
	})
}

// TestLedger_PagoExactoCompleta un pago por el total deja el saldo en cero
// exacto y el libro completo; un segundo pago positivo se rechaza.
func TestLedger_PagoExactoCompleta(t *testing.T) {
	ledger := nuevoLibro(t)

	p, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo,
		Amount:   dec("106.20"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID, "el pago registrado debe salir con ID asignado")

	s := ledger.Summary()
	assert.True(t, s.Remaining.IsZero(), "el saldo debe quedar en cero exacto")
	assert.True(t, s.IsComplete)

	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo,
		Amount:   dec("0.01"),
	})
	assert.ErrorIs(t, err, domain.ErrExceedsRemaining,
		"un libro completo no admite más pagos positivos")
}

// TestLedger_RemoverUnicoPagoReabre quitar el único pago de un libro completo
// lo deja incompleto con el saldo original.
func TestLedger_RemoverUnicoPagoReabre(t *testing.T) {
	ledger := nuevoLibro(t)
	p, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo,
		Amount:   dec("106.20"),
	})
	require.NoError(t, err)
	require.True(t, ledger.Summary().IsComplete)

	ledger.RemovePayment(p.ID)

	s := ledger.Summary()
	assert.False(t, s.IsComplete)
	assert.Equal(t, "106.20", s.Remaining.StringFixed(2))
}

// TestLedger_RemoverInexistenteEsIdempotente quitar un ID ausente no altera
// el estado ni falla.
func TestLedger_RemoverInexistenteEsIdempotente(t *testing.T) {
	ledger := nuevoLibro(t)
	_, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo,
		Amount:   dec("50.00"),
	})
	require.NoError(t, err)

	ledger.RemovePayment("no-existe")
	ledger.RemovePayment("no-existe")

	assert.Equal(t, "50.00", ledger.Summary().TotalPaid.StringFixed(2))
	assert.Len(t, ledger.Payments(), 1)
}

// TestLedger_MontosInvalidos cero y negativo se rechazan con error tipado.
func TestLedger_MontosInvalidos(t *testing.T) {
	ledger := nuevoLibro(t)

	_, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo,
		Amount:   decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo,
		Amount:   dec("-10.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// TestLedger_MedioDesconocido un medio fuera del catálogo no se puede
// clasificar contado/crédito, así que se rechaza.
func TestLedger_MedioDesconocido(t *testing.T) {
	ledger := nuevoLibro(t)
	_, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: "999",
		Amount:   dec("10.00"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownPaymentMethod)
}

// TestLedger_ConservacionMultiplesPagos tras cualquier secuencia de altas y
// bajas, el total pagado es exactamente la suma de los pagos vigentes y nunca
// supera el total a pagar.
func TestLedger_ConservacionMultiplesPagos(t *testing.T) {
	ledger := nuevoLibro(t)

	p1, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo, Amount: dec("40.00"),
	})
	require.NoError(t, err)
	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansTarjetaDebito, Amount: dec("30.20"),
	})
	require.NoError(t, err)

	assert.Equal(t, "70.20", ledger.Summary().TotalPaid.StringFixed(2))
	assert.Equal(t, "36.00", ledger.Summary().Remaining.StringFixed(2))

	ledger.RemovePayment(p1.ID)
	assert.Equal(t, "30.20", ledger.Summary().TotalPaid.StringFixed(2))

	// el rechazo evalúa el saldo vigente del libro, no el total original
	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo, Amount: dec("76.01"),
	})
	assert.ErrorIs(t, err, domain.ErrExceedsRemaining)

	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo, Amount: dec("76.00"),
	})
	require.NoError(t, err)
	assert.True(t, ledger.Summary().IsComplete)
}

// TestLedger_MontoSugerido el monto sugerido es el saldo pendiente y baja con
// cada pago hasta cero.
func TestLedger_MontoSugerido(t *testing.T) {
	ledger := nuevoLibro(t)
	assert.Equal(t, "106.20", ledger.SuggestedAmount().StringFixed(2))

	_, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo, Amount: dec("100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "6.20", ledger.SuggestedAmount().StringFixed(2))

	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo, Amount: dec("6.20"),
	})
	require.NoError(t, err)
	assert.True(t, ledger.SuggestedAmount().IsZero())
}

// TestLedger_PagoContadoLlevaNotaYFechaEmision un medio contado conserva la
// nota y toma la fecha de emisión del comprobante; no lleva vencimiento.
func TestLedger_PagoContadoLlevaNotaYFechaEmision(t *testing.T) {
	emision := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	ledger := payments.NewLedger(dec("100.00"), payments.DefaultCatalog(), payments.LedgerOptions{
		EmissionDate: emision,
		Now:          func() time.Time { return fixedNow },
	})

	p, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansTransferencia,
		Amount:   dec("100.00"),
		Note:     "operación 00123",
	})
	require.NoError(t, err)
	assert.Equal(t, "operación 00123", p.Note)
	assert.True(t, p.Date.Equal(emision))
	assert.Nil(t, p.DueDate)
}

// TestLedger_PagoCreditoExigeVencimientoEnVentana un medio de crédito exige
// vencimiento dentro de [hoy, hoy+N]; fuera de la ventana o ausente se rechaza.
func TestLedger_PagoCreditoExigeVencimientoEnVentana(t *testing.T) {
	ledger := payments.NewLedger(dec("100.00"), payments.DefaultCatalog(), payments.LedgerOptions{
		EmissionDate:        fixedNow,
		CreditDueWindowDays: 30,
		Now:                 func() time.Time { return fixedNow },
	})

	// sin vencimiento
	_, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentFormCredito,
		Amount:   dec("50.00"),
	})
	assert.ErrorIs(t, err, domain.ErrDueDateOutOfRange)

	// antes de hoy
	ayer := fixedNow.AddDate(0, 0, -1)
	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentFormCredito,
		Amount:   dec("50.00"),
		DueDate:  &ayer,
	})
	assert.ErrorIs(t, err, domain.ErrDueDateOutOfRange)

	// después de la ventana
	tarde := fixedNow.AddDate(0, 0, 31)
	_, err = ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentFormCredito,
		Amount:   dec("50.00"),
		DueDate:  &tarde,
	})
	assert.ErrorIs(t, err, domain.ErrDueDateOutOfRange)

	// dentro de la ventana: la nota se descarta, el vencimiento queda
	dentro := fixedNow.AddDate(0, 0, 15)
	p, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentFormCredito,
		Amount:   dec("50.00"),
		Note:     "esta nota no aplica al crédito",
		DueDate:  &dentro,
	})
	require.NoError(t, err)
	assert.Empty(t, p.Note, "un pago a crédito lleva vencimiento, no nota")
	require.NotNil(t, p.DueDate)
	assert.Equal(t, "2025-03-25", p.DueDate.Format("2006-01-02"))
}

// TestLedger_CompletitudMonotona IsComplete se hace verdadero exactamente al
// alcanzar el total y vuelve a falso si una baja lo deja por debajo.
func TestLedger_CompletitudMonotona(t *testing.T) {
	ledger := nuevoLibro(t)

	_, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo, Amount: dec("106.19"),
	})
	require.NoError(t, err)
	assert.False(t, ledger.Summary().IsComplete, "a un centavo del total aún no está completo")

	p, err := ledger.AddPayment(payments.AddPaymentInput{
		MethodID: sunat.PaymentMeansEfectivo, Amount: dec("0.01"),
	})
	require.NoError(t, err)
	assert.True(t, ledger.Summary().IsComplete)

	ledger.RemovePayment(p.ID)
	assert.False(t, ledger.Summary().IsComplete)
}

// TestLedger_TotalCeroNaceCompleto un comprobante con total cero (todo
// gratuito) nace completo y no necesita pagos.
func TestLedger_TotalCeroNaceCompleto(t *testing.T) {
	ledger := payments.NewLedger(decimal.Zero, payments.DefaultCatalog(), payments.LedgerOptions{
		EmissionDate: fixedNow,
		Now:          func() time.Time { return fixedNow },
	})
	assert.True(t, ledger.Summary().IsComplete)
	assert.True(t, ledger.SuggestedAmount().IsZero())
}
