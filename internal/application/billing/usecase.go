// Package billing orquesta el motor de totales: parsea y acota la entrada
// cruda del POS, calcula las líneas y los totales, registra los pagos en el
// libro y finaliza el comprobante solo cuando el saldo quedó en cero.
package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-pro/internal/application/dto"
	"github.com/jhoicas/facturacion-pro/internal/domain"
	domainbilling "github.com/jhoicas/facturacion-pro/internal/domain/billing"
	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
	"github.com/jhoicas/facturacion-pro/internal/domain/payments"
	"github.com/jhoicas/facturacion-pro/internal/domain/repository"
	"github.com/jhoicas/facturacion-pro/pkg/logger"
	"github.com/jhoicas/facturacion-pro/pkg/sunat"
)

// Config parámetros del caso de uso.
type Config struct {
	TaxRate             decimal.Decimal  // tasa de IGV por defecto (0.18)
	CreditDueWindowDays int              // ventana [hoy, hoy+N] para vencimientos de crédito
	Currency            string           // moneda de los comprobantes (PEN)
	Now                 func() time.Time // reloj inyectable; nil usa time.Now
}

// DocumentUseCase caso de uso del ciclo de vida de un comprobante.
type DocumentUseCase struct {
	repo    repository.DocumentRepository
	catalog *payments.Catalog
	cfg     Config
	log     *logger.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, catalog *payments.Catalog, cfg Config, log *logger.Logger) *DocumentUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TaxRate.IsZero() {
		cfg.TaxRate = decimal.NewFromFloat(0.18)
	}
	if cfg.Currency == "" {
		cfg.Currency = "PEN"
	}
	return &DocumentUseCase{repo: repo, catalog: catalog, cfg: cfg, log: log}
}

// BuildDocument arma el agregado Document a partir de la entrada cruda:
// parsea y acota los campos numéricos (texto inválido o negativo vale cero) y
// calcula cada línea con el pricer. El único rechazo es un código de
// afectación fuera del catálogo 07, porque sin categoría no hay cálculo.
func (uc *DocumentUseCase) BuildDocument(ctx context.Context, in dto.DocumentRequest) (entity.Document, error) {
	emission := uc.cfg.Now()
	if in.Date != "" {
		if d, err := time.Parse("2006-01-02", in.Date); err == nil {
			emission = d
		}
	}
	docType := in.DocType
	if docType == "" {
		docType = sunat.DocTypeBoleta
	}
	taxRate := uc.cfg.TaxRate
	if in.TaxRate != "" {
		if r := ParseAmount(in.TaxRate); r.IsPositive() {
			taxRate = r
		}
	}

	doc := entity.Document{
		ID:           uuid.New().String(),
		Series:       in.Series,
		Number:       in.Number,
		DocType:      docType,
		EmissionDate: emission,
		TaxRate:      taxRate,
	}

	for _, l := range in.Lines {
		affectation, ok := entity.AffectationFromCode(l.AffectationCode)
		if !ok {
			return entity.Document{}, fmt.Errorf("código de afectación %q: %w", l.AffectationCode, domain.ErrInvalidInput)
		}
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}
		line := domainbilling.Price(domainbilling.PriceInput{
			ID:                  id,
			Description:         l.Description,
			Quantity:            ParseAmount(l.Quantity),
			UnitValueWithoutTax: ParseAmount(l.UnitValue),
			Affectation:         affectation,
			ItemDiscount:        ParseAmount(l.ItemDiscount),
			TaxRate:             taxRate,
		})
		doc = doc.WithLine(line)
	}

	if in.GlobalDiscount != nil {
		doc = doc.WithDiscountPolicy(entity.GlobalDiscountPolicy{
			Enabled:    in.GlobalDiscount.Enabled,
			Mode:       parseDiscountMode(in.GlobalDiscount.Mode),
			InputValue: ParseAmount(in.GlobalDiscount.Value),
		})
	}
	return doc, nil
}

// Totals recalcula el snapshot de totales del documento.
func (uc *DocumentUseCase) Totals(doc entity.Document) entity.DocumentTotals {
	return domainbilling.AggregateDocument(doc)
}

// OpenLedger abre el libro de pagos contra el total a pagar del snapshot.
func (uc *DocumentUseCase) OpenLedger(doc entity.Document, totals entity.DocumentTotals) *payments.Ledger {
	return payments.NewLedger(totals.TotalToPay, uc.catalog, payments.LedgerOptions{
		EmissionDate:        doc.EmissionDate,
		CreditDueWindowDays: uc.cfg.CreditDueWindowDays,
		Now:                 uc.cfg.Now,
	})
}

// RegisterPayments registra los pagos de la entrada cruda en el libro. El
// primer rechazo del libro corta el registro y se propaga tipado al llamador.
func (uc *DocumentUseCase) RegisterPayments(ledger *payments.Ledger, reqs []dto.PaymentRequest) error {
	for i, p := range reqs {
		var due *time.Time
		if p.DueDate != "" {
			if d, err := time.Parse("2006-01-02", p.DueDate); err == nil {
				due = &d
			}
		}
		_, err := ledger.AddPayment(payments.AddPaymentInput{
			MethodID: p.MethodID,
			Amount:   ParseAmount(p.Amount),
			Note:     p.Note,
			DueDate:  due,
		})
		if err != nil {
			return fmt.Errorf("pago %d (medio %s): %w", i+1, p.MethodID, err)
		}
	}
	return nil
}

// Finalize cierra el comprobante. Precondición dura: el libro debe estar
// completo (saldo ≤ 0); de lo contrario retorna ErrPaymentsIncomplete y no
// persiste nada.
func (uc *DocumentUseCase) Finalize(ctx context.Context, doc entity.Document, totals entity.DocumentTotals, ledger *payments.Ledger) (*dto.DocumentResponse, error) {
	summary := ledger.Summary()
	if !summary.IsComplete {
		return nil, domain.ErrPaymentsIncomplete
	}

	final := &entity.FinalizedDocument{
		Document:    doc,
		Totals:      totals,
		Payments:    ledger.Payments(),
		FinalizedAt: uc.cfg.Now(),
	}
	if err := uc.repo.Save(final); err != nil {
		return nil, fmt.Errorf("guardar comprobante: %w", err)
	}

	if uc.log != nil {
		uc.log.Info().
			Str("document_id", doc.ID).
			Str("doc_type", doc.DocType).
			Str("total_to_pay", totals.TotalToPay.StringFixed(2)).
			Int("payments", len(final.Payments)).
			Msg("comprobante finalizado")
	}
	return uc.toResponse(final, summary), nil
}

// Process corre el ciclo completo para una entrada cruda: armar documento,
// totalizar, registrar pagos y finalizar.
func (uc *DocumentUseCase) Process(ctx context.Context, in dto.DocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.BuildDocument(ctx, in)
	if err != nil {
		return nil, err
	}
	totals := uc.Totals(doc)
	ledger := uc.OpenLedger(doc, totals)
	if err := uc.RegisterPayments(ledger, in.Payments); err != nil {
		return nil, err
	}
	return uc.Finalize(ctx, doc, totals, ledger)
}

// ParseAmount parsea un monto ingresado como texto. Texto no numérico o
// negativo vale cero: el POS nunca se bloquea por una pulsación inválida.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func parseDiscountMode(s string) entity.DiscountMode {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PORCENTAJE":
		return entity.DiscountByPercentage
	default:
		return entity.DiscountByAmount
	}
}

func (uc *DocumentUseCase) toResponse(final *entity.FinalizedDocument, summary entity.PaymentSummary) *dto.DocumentResponse {
	doc := final.Document
	resp := &dto.DocumentResponse{
		ID:       doc.ID,
		Series:   doc.Series,
		Number:   doc.Number,
		DocType:  doc.DocType,
		Date:     doc.EmissionDate.Format("2006-01-02"),
		Currency: uc.cfg.Currency,
		Totals: dto.DocumentTotalsResponse{
			TaxedBeforeDiscount:     final.Totals.TaxedBeforeDiscount,
			Exonerated:              final.Totals.Exonerated,
			Unaffected:              final.Totals.Unaffected,
			Free:                    final.Totals.Free,
			EffectiveGlobalDiscount: final.Totals.EffectiveGlobalDiscount,
			TaxedAfterDiscount:      final.Totals.TaxedAfterDiscount,
			IGV:                     final.Totals.IGV,
			TaxBase:                 final.Totals.TaxBase,
			TotalAmount:             final.Totals.TotalAmount,
			TotalDiscount:           final.Totals.TotalDiscount,
			TotalToPay:              final.Totals.TotalToPay,
		},
		Lines:    make([]dto.LineItemResponse, 0, len(doc.Lines)),
		Payments: make([]dto.PaymentResponse, 0, len(final.Payments)),
		Summary: dto.PaymentSummaryResponse{
			TotalAmount: summary.TotalAmount,
			TotalPaid:   summary.TotalPaid,
			Remaining:   summary.Remaining,
			IsComplete:  summary.IsComplete,
		},
	}
	for _, l := range doc.Lines {
		resp.Lines = append(resp.Lines, dto.LineItemResponse{
			ID:                l.ID,
			Description:       l.Description,
			Quantity:          l.Quantity,
			UnitValue:         l.UnitValueWithoutTax,
			UnitPrice:         l.UnitPriceWithTax,
			Affectation:       string(l.Affectation),
			AffectationCode:   l.Affectation.SUNATCode(),
			GrossValue:        l.GrossValue,
			EffectiveDiscount: l.EffectiveDiscount,
			NetValue:          l.NetValue,
			Tax:               l.Tax,
			LineTotal:         l.LineTotal,
			DiscountPct:       l.DiscountPctApplied,
		})
	}
	for _, p := range final.Payments {
		pr := dto.PaymentResponse{
			ID:       p.ID,
			MethodID: p.MethodID,
			Amount:   p.Amount,
			Note:     p.Note,
			Date:     p.Date.Format("2006-01-02"),
		}
		if m, ok := uc.catalog.Lookup(p.MethodID); ok {
			pr.MethodName = m.Name
		}
		if p.DueDate != nil {
			pr.DueDate = p.DueDate.Format("2006-01-02")
		}
		resp.Payments = append(resp.Payments, pr)
	}
	return resp
}
