package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-pro/internal/domain"
	"github.com/jhoicas/facturacion-pro/internal/domain/entity"
	"github.com/jhoicas/facturacion-pro/internal/infrastructure/memory"
)

func comprobante(id string) *entity.FinalizedDocument {
	return &entity.FinalizedDocument{
		Document: entity.Document{ID: id, EmissionDate: time.Now()},
		Totals:   entity.DocumentTotals{TotalToPay: decimal.NewFromInt(100)},
	}
}

// TestSave_RechazaDuplicado un comprobante finalizado es inmutable: guardar
// dos veces el mismo ID es un duplicado.
func TestSave_RechazaDuplicado(t *testing.T) {
	repo := memory.NewDocumentRepository()

	require.NoError(t, repo.Save(comprobante("c1")))
	assert.ErrorIs(t, repo.Save(comprobante("c1")), domain.ErrDuplicate)
}

// TestGetByID_NoEncontrado buscar un ID ausente retorna error de dominio.
func TestGetByID_NoEncontrado(t *testing.T) {
	repo := memory.NewDocumentRepository()
	_, err := repo.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestList_OrdenDeInsercion List conserva el orden de guardado.
func TestList_OrdenDeInsercion(t *testing.T) {
	repo := memory.NewDocumentRepository()
	require.NoError(t, repo.Save(comprobante("c1")))
	require.NoError(t, repo.Save(comprobante("c2")))

	docs, err := repo.List()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "c1", docs[0].Document.ID)
	assert.Equal(t, "c2", docs[1].Document.ID)
}
