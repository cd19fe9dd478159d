package service

import (
	"context"

	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// TitularFinder is the read-only lookup the reconciler needs. Kept narrow so
// the reconciler stays unit-testable without a live database.
type TitularFinder interface {
	GetByCPF(ctx context.Context, cpf string) (*models.Titular, error)
}

// TermoRepository is the persistence surface of the acceptance flow.
// Implemented by dao.TermoAceiteDAO.
type TermoRepository interface {
	// CreateTermo persists the record and its reconciled titular atomically.
	CreateTermo(ctx context.Context, termo *models.TermoAceite) error
	// UpdateCaminhoArquivo backfills the rendered-artifact path.
	UpdateCaminhoArquivo(ctx context.Context, termoID int64, caminho string) error
	GetByID(ctx context.Context, id int64) (*models.TermoAceite, error)
	ExisteCpfAtivo(ctx context.Context, cpf string) (bool, error)
	ListByCPF(ctx context.Context, cpf string) ([]models.TermoAceite, error)
}

// DocumentRenderer produces and stores the printable acceptance document.
// Implemented by document.Renderer.
type DocumentRenderer interface {
	Render(termo *models.TermoAceite) ([]byte, error)
	Store(conteudo []byte, numeroTermo string) (string, error)
	// Exists reports whether a previously stored artifact is still present.
	Exists(caminho string) bool
}

// AuditSink records operational audit entries. Implementations must swallow
// their own failures; callers never see an error.
type AuditSink interface {
	Registrar(ctx context.Context, termoID *int64, tipoOperacao, descricao, ipOrigem, userAgent string, status models.StatusOperacao)
}
