// Package payments contiene el libro de pagos de un comprobante y el catálogo
// estático de medios de pago que lo gobierna.
package payments

import (
	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
	"github.com/jhoicas/facturacion-pro/pkg/sunat"
)

// Catalog catálogo de medios de pago. Se puebla una sola vez al arranque y no
// se muta en runtime; la búsqueda por ID es O(1).
type Catalog struct {
	byID    map[string]entity.PaymentMethod
	ordered []entity.PaymentMethod
}

// NewCatalog construye el catálogo a partir de la lista de medios. Si hay IDs
// repetidos, gana la primera aparición (el orden de la lista es el de
// presentación en el POS).
func NewCatalog(methods []entity.PaymentMethod) *Catalog {
	c := &Catalog{byID: make(map[string]entity.PaymentMethod, len(methods))}
	for _, m := range methods {
		if _, exists := c.byID[m.ID]; exists {
			continue
		}
		c.byID[m.ID] = m
		c.ordered = append(c.ordered, m)
	}
	return c
}

// DefaultCatalog catálogo por defecto: medios de pago de uso frecuente del
// catálogo SUNAT 59 más la venta al crédito en cuotas (forma de pago Credito).
func DefaultCatalog() *Catalog {
	return NewCatalog([]entity.PaymentMethod{
		{ID: sunat.PaymentMeansEfectivo, Name: "Efectivo"},
		{ID: sunat.PaymentMeansTarjetaDebito, Name: "Tarjeta de débito"},
		{ID: sunat.PaymentMeansTarjetaCredito, Name: "Tarjeta de crédito"},
		{ID: sunat.PaymentMeansTransferencia, Name: "Transferencia"},
		{ID: sunat.PaymentMeansDeposito, Name: "Depósito en cuenta"},
		{ID: sunat.PaymentFormCredito, Name: "Crédito en cuotas", IsCredit: true},
	})
}

// Lookup busca un medio por ID.
func (c *Catalog) Lookup(id string) (entity.PaymentMethod, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Methods retorna los medios en orden de presentación (copia defensiva).
func (c *Catalog) Methods() []entity.PaymentMethod {
	return append([]entity.PaymentMethod(nil), c.ordered...)
}
