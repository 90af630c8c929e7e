package entity

// PaymentMethod medio de pago del catálogo estático (catálogo SUNAT 59 más los
// medios internos del negocio). IsCredit distingue los medios que difieren el
// cobro en cuotas: esos pagos exigen fecha de vencimiento en lugar de nota.
type PaymentMethod struct {
	ID       string
	Name     string
	IsCredit bool
}
