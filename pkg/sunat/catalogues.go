// Package sunat contiene catálogos y validaciones alineados a los Anexos de la
// Resolución de Comprobantes de Pago Electrónicos SUNAT (Perú).
package sunat

// =============================================================================
// Catálogo No. 07 - Tipos de Afectación del IGV
// Código que identifica el tratamiento tributario de cada línea de venta.
// Los códigos 11-16 y 31-36 corresponden a transferencias gratuitas (retiros,
// bonificaciones, premios); a efectos de cobro se tratan como gratuitas.
// =============================================================================

const (
	AffectationGravadoOnerosa    = "10" // Gravado - Operación Onerosa
	AffectationGravadoRetiro     = "11" // Gravado - Retiro por premio
	AffectationGravadoDonacion   = "12" // Gravado - Retiro por donación
	AffectationGravadoGratuito   = "13" // Gravado - Retiro
	AffectationGravadoPublicidad = "14" // Gravado - Retiro por publicidad
	AffectationGravadoBonif      = "15" // Gravado - Bonificaciones
	AffectationExoneradoOnerosa  = "20" // Exonerado - Operación Onerosa
	AffectationExoneradoGratuito = "21" // Exonerado - Transferencia gratuita
	AffectationInafectoOnerosa   = "30" // Inafecto - Operación Onerosa
	AffectationInafectoRetiro    = "31" // Inafecto - Retiro
	AffectationInafectoBonif     = "32" // Inafecto - Retiro por bonificación
)

// ValidAffectationCodes contiene los códigos de afectación del IGV aceptados.
var ValidAffectationCodes = map[string]bool{
	AffectationGravadoOnerosa: true, AffectationGravadoRetiro: true,
	AffectationGravadoDonacion: true, AffectationGravadoGratuito: true,
	AffectationGravadoPublicidad: true, AffectationGravadoBonif: true,
	AffectationExoneradoOnerosa: true, AffectationExoneradoGratuito: true,
	AffectationInafectoOnerosa: true, AffectationInafectoRetiro: true,
	AffectationInafectoBonif: true,
}

// IsGratuita indica si un código del catálogo 07 corresponde a una
// transferencia gratuita (no se cobra al adquirente).
func IsGratuita(code string) bool {
	switch code {
	case AffectationGravadoOnerosa, AffectationExoneradoOnerosa, AffectationInafectoOnerosa:
		return false
	default:
		return ValidAffectationCodes[code]
	}
}

// =============================================================================
// Catálogo No. 05 - Códigos de Tributo
// Identifican el tributo en los totales por categoría del comprobante.
// =============================================================================

const (
	TaxCodeIGV = "1000" // IGV - Impuesto General a las Ventas
	TaxCodeGRA = "9996" // GRA - Gratuito
	TaxCodeEXO = "9997" // EXO - Exonerado
	TaxCodeINA = "9998" // INA - Inafecto
)

// =============================================================================
// Catálogo No. 01 - Tipos de Comprobante de Pago
// =============================================================================

const (
	DocTypeFactura     = "01" // Factura
	DocTypeBoleta      = "03" // Boleta de venta
	DocTypeNotaCredito = "07" // Nota de crédito
	DocTypeNotaDebito  = "08" // Nota de débito
)

// =============================================================================
// Forma de pago (UBL PaymentTerms SUNAT): Contado o Crédito en cuotas.
// =============================================================================

const (
	PaymentFormContado = "Contado"
	PaymentFormCredito = "Credito"
)

// =============================================================================
// Catálogo No. 59 - Medios de Pago (códigos de uso frecuente en POS)
// =============================================================================

const (
	PaymentMeansDeposito       = "001" // Depósito en cuenta
	PaymentMeansTransferencia  = "003" // Transferencia de fondos
	PaymentMeansTarjetaDebito  = "005" // Tarjeta de débito
	PaymentMeansTarjetaCredito = "006" // Tarjeta de crédito emitida en el país
	PaymentMeansEfectivo       = "008" // Efectivo, operaciones con obligación de usar medio de pago
	PaymentMeansEfectivoOtros  = "009" // Efectivo, en los demás casos
)

// ValidPaymentMeansCodes códigos de medio de pago válidos (uso común en POS).
var ValidPaymentMeansCodes = map[string]bool{
	PaymentMeansDeposito: true, PaymentMeansTransferencia: true,
	PaymentMeansTarjetaDebito: true, PaymentMeansTarjetaCredito: true,
	PaymentMeansEfectivo: true, PaymentMeansEfectivoOtros: true,
}

// =============================================================================
// Catálogo No. 06 - Tipos de documento de identidad
// =============================================================================

const (
	IdentificationTypeDNI = "1" // DNI - Documento Nacional de Identidad
	IdentificationTypeRUC = "6" // RUC - Registro Único de Contribuyentes
)
