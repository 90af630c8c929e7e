// Package memory implementa los puertos de persistencia en memoria, para la
// CLI y las pruebas. Cada comprobante guardado es una copia independiente.
package memory

import (
	"sync"

	"github.com/jhoicas/facturacion-pro/internal/domain"
	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
)

// DocumentRepository almacén en memoria de comprobantes finalizados.
type DocumentRepository struct {
	mu   sync.RWMutex
	byID map[string]*entity.FinalizedDocument
	ids  []string // orden de inserción
}

// NewDocumentRepository crea el almacén vacío.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{byID: make(map[string]*entity.FinalizedDocument)}
}

// Save guarda el comprobante. Un comprobante finalizado es inmutable: guardar
// dos veces el mismo ID es un error de duplicado.
func (r *DocumentRepository) Save(doc *entity.FinalizedDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := doc.Document.ID
	if _, exists := r.byID[id]; exists {
		return domain.ErrDuplicate
	}
	cp := *doc
	cp.Document.Lines = append([]entity.LineItem(nil), doc.Document.Lines...)
	cp.Payments = append([]entity.Payment(nil), doc.Payments...)
	r.byID[id] = &cp
	r.ids = append(r.ids, id)
	return nil
}

// GetByID busca un comprobante por ID.
func (r *DocumentRepository) GetByID(id string) (*entity.FinalizedDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

// List retorna los comprobantes en orden de inserción.
func (r *DocumentRepository) List() ([]*entity.FinalizedDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.FinalizedDocument, 0, len(r.ids))
	for _, id := range r.ids {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}
