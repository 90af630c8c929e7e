package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidAmount        = errors.New("monto de pago inválido")
	ErrExceedsRemaining     = errors.New("el pago excede el saldo pendiente")
	ErrUnknownPaymentMethod = errors.New("medio de pago no registrado en el catálogo")
	ErrDueDateOutOfRange    = errors.New("fecha de vencimiento fuera de la ventana permitida")
	ErrPaymentsIncomplete   = errors.New("el comprobante aún tiene saldo pendiente de pago")
	ErrDuplicate            = errors.New("recurso duplicado")
)
