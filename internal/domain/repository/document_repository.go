package repository

import "github.com/jhoicas/facturacion-pro/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para comprobantes
// finalizados. El motor solo escribe comprobantes completos (pagos cubren el
// total); la implementación concreta (base de datos, cola de sincronización)
// queda en manos del consumidor.
type DocumentRepository interface {
	Save(doc *entity.FinalizedDocument) error
	GetByID(id string) (*entity.FinalizedDocument, error)
	List() ([]*entity.FinalizedDocument, error)
}
