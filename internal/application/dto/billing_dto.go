package dto

import "github.com/shopspring/decimal"

// Los campos numéricos de entrada viajan como texto crudo tal como los tipea
// el usuario del POS: la capa de aplicación los parsea y acota (texto no
// numérico o negativo vale cero, nunca es error). Los campos de salida usan
// decimal.Decimal, que serializa como string en JSON: representación segura
// para montos, sin floats binarios.

// LineItemRequest línea de venta tal como llega de la capa de captura.
type LineItemRequest struct {
	ID              string `json:"id,omitempty"`
	Description     string `json:"description,omitempty"`
	Quantity        string `json:"quantity"`
	UnitValue       string `json:"unit_value"`       // valor unitario sin IGV
	AffectationCode string `json:"affectation_code"` // catálogo SUNAT 07
	ItemDiscount    string `json:"item_discount,omitempty"`
}

// GlobalDiscountRequest política de descuento global ingresada en la UI.
// Mode: MONTO (con IGV incluido) o PORCENTAJE.
type GlobalDiscountRequest struct {
	Enabled bool   `json:"enabled"`
	Mode    string `json:"mode"`
	Value   string `json:"value"`
}

// DocumentRequest comprobante en edición: líneas, descuento global y pagos.
type DocumentRequest struct {
	Series         string                 `json:"series,omitempty"`
	Number         string                 `json:"number,omitempty"`
	DocType        string                 `json:"doc_type,omitempty"` // catálogo SUNAT 01; por defecto 03 (boleta)
	Date           string                 `json:"date,omitempty"`     // fecha de emisión, 2006-01-02
	TaxRate        string                 `json:"tax_rate,omitempty"` // vacío usa la tasa configurada
	Lines          []LineItemRequest      `json:"lines"`
	GlobalDiscount *GlobalDiscountRequest `json:"global_discount,omitempty"`
	Payments       []PaymentRequest       `json:"payments,omitempty"`
}

// LineItemResponse línea con sus valores derivados.
type LineItemResponse struct {
	ID                string          `json:"id"`
	Description       string          `json:"description,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitValue         decimal.Decimal `json:"unit_value"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Affectation       string          `json:"affectation"`
	AffectationCode   string          `json:"affectation_code"`
	GrossValue        decimal.Decimal `json:"gross_value"`
	EffectiveDiscount decimal.Decimal `json:"effective_discount"`
	NetValue          decimal.Decimal `json:"net_value"`
	Tax               decimal.Decimal `json:"tax"`
	LineTotal         decimal.Decimal `json:"line_total"`
	DiscountPct       decimal.Decimal `json:"discount_pct"`
}

// DocumentTotalsResponse snapshot de totales del comprobante.
type DocumentTotalsResponse struct {
	TaxedBeforeDiscount     decimal.Decimal `json:"taxed_before_discount"`
	Exonerated              decimal.Decimal `json:"exonerated"`
	Unaffected              decimal.Decimal `json:"unaffected"`
	Free                    decimal.Decimal `json:"free"`
	EffectiveGlobalDiscount decimal.Decimal `json:"effective_global_discount"`
	TaxedAfterDiscount      decimal.Decimal `json:"taxed_after_discount"`
	IGV                     decimal.Decimal `json:"igv"`
	TaxBase                 decimal.Decimal `json:"tax_base"`
	TotalAmount             decimal.Decimal `json:"total_amount"`
	TotalDiscount           decimal.Decimal `json:"total_discount"`
	TotalToPay              decimal.Decimal `json:"total_to_pay"`
}

// DocumentResponse contrato de salida del comprobante finalizado: totales,
// líneas y pagos. Es lo que consumen persistencia e impresión; ninguna de las
// dos recalcula montos.
type DocumentResponse struct {
	ID       string                 `json:"id"`
	Series   string                 `json:"series,omitempty"`
	Number   string                 `json:"number,omitempty"`
	DocType  string                 `json:"doc_type"`
	Date     string                 `json:"date"`
	Currency string                 `json:"currency"`
	Totals   DocumentTotalsResponse `json:"totals"`
	Lines    []LineItemResponse     `json:"lines"`
	Payments []PaymentResponse      `json:"payments"`
	Summary  PaymentSummaryResponse `json:"payment_summary"`
}
