package dto

import "github.com/shopspring/decimal"

// PaymentRequest pago tal como llega de la capa de captura. DueDate solo
// aplica a medios de crédito (formato 2006-01-02); Note solo a medios contado.
type PaymentRequest struct {
	MethodID string `json:"method_id"`
	Amount   string `json:"amount"`
	Note     string `json:"note,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
}

// PaymentResponse pago registrado, con su ID asignado.
type PaymentResponse struct {
	ID         string          `json:"id"`
	MethodID   string          `json:"method_id"`
	MethodName string          `json:"method_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	Date       string          `json:"date"`
	DueDate    string          `json:"due_date,omitempty"`
}

// PaymentSummaryResponse estado del libro de pagos para la UI y la impresión.
type PaymentSummaryResponse struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Remaining   decimal.Decimal `json:"remaining"`
	IsComplete  bool            `json:"is_complete"`
}

// PaymentMethodResponse medio de pago del catálogo.
type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsCredit bool   `json:"is_credit"`
}
