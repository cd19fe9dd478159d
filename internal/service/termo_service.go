package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lgpd-forms/consent-form-api/internal/dao"
	"github.com/lgpd-forms/consent-form-api/internal/metrics"
	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
	"github.com/lgpd-forms/consent-form-api/pkg/utils"
)

// Attempts at generating a unique numero before giving up. Collisions are
// only possible when two submissions share the same second and suffix draw.
const maxNumeroAttempts = 3

// TermoService orchestrates the acceptance flow: validate, reconcile the
// titular, build the canonical text, hash it, persist everything atomically
// and render the downloadable artifact afterwards.
type TermoService struct {
	repo        TermoRepository
	reconciler  *TitularReconciler
	conteudo    *ConteudoBuilder
	numeros     *NumeroTermoGenerator
	renderer    DocumentRenderer
	audit       AuditSink
	metrics     *metrics.Metrics
	versaoTermo string
	log         *logrus.Logger
}

func NewTermoService(
	repo TermoRepository,
	reconciler *TitularReconciler,
	conteudo *ConteudoBuilder,
	numeros *NumeroTermoGenerator,
	renderer DocumentRenderer,
	audit AuditSink,
	m *metrics.Metrics,
	versaoTermo string,
	log *logrus.Logger,
) *TermoService {
	return &TermoService{
		repo:        repo,
		reconciler:  reconciler,
		conteudo:    conteudo,
		numeros:     numeros,
		renderer:    renderer,
		audit:       audit,
		metrics:     m,
		versaoTermo: versaoTermo,
		log:         log,
	}
}

// CriarTermoAceite processes one consent submission end to end.
func (s *TermoService) CriarTermoAceite(ctx context.Context, req *models.TermoAceiteCreateRequest, ipOrigem, userAgent string) (*models.TermoAceiteResponse, error) {
	start := time.Now()
	defer s.metrics.ObserveCriacao(start)

	resp, err := s.criarTermo(ctx, req, ipOrigem, userAgent)
	if err != nil {
		if serviceerror.IsClientError(err) {
			s.metrics.IncrementFalhasValidacao()
			return nil, err
		}
		// Server-side fault: audit it and hand the caller only an opaque
		// tracking code. Details stay in the logs.
		tracking := utils.GenerateTrackingCode()
		s.log.WithError(err).WithFields(logrus.Fields{
			"tracking_code": tracking,
			"cpf":           req.Titular.CPF,
		}).Error("Erro ao criar termo de aceite")
		s.audit.Registrar(ctx, nil, models.OperacaoAceiteErro,
			fmt.Sprintf("Erro ao criar termo (código %s)", tracking),
			ipOrigem, userAgent, models.OperacaoErro)
		return nil, serviceerror.New(serviceerror.InternalError, tracking)
	}

	s.metrics.IncrementTermosCriados()
	return resp, nil
}

func (s *TermoService) criarTermo(ctx context.Context, req *models.TermoAceiteCreateRequest, ipOrigem, userAgent string) (*models.TermoAceiteResponse, error) {
	// The titular CPF gate runs before anything touches the store.
	if !utils.IsValidCPF(req.Titular.CPF) {
		return nil, serviceerror.New(serviceerror.ValidationError, "CPF do titular inválido")
	}
	if !req.AceiteConfirmado {
		return nil, serviceerror.New(serviceerror.ValidationError, "O aceite deve ser confirmado")
	}
	if err := utils.ValidateTipoCadastro(req.TipoCadastro); err != nil {
		return nil, serviceerror.New(serviceerror.ValidationError, err.Error())
	}

	titular, err := s.reconciler.Reconciliar(ctx, &req.Titular, req.Dependentes)
	if err != nil {
		return nil, err
	}

	conteudo, err := s.conteudo.Gerar(titular)
	if err != nil {
		return nil, serviceerror.New(serviceerror.InternalError, "erro ao gerar conteúdo do termo")
	}

	agora := time.Now().UTC()
	termo := &models.TermoAceite{
		TipoCadastro:     req.TipoCadastro,
		ConteudoTermo:    conteudo,
		AceiteConfirmado: req.AceiteConfirmado,
		DataHoraAceite:   agora,
		IpOrigem:         ipOrigem,
		UserAgent:        userAgent,
		HashIntegridade:  utils.IntegrityHash(conteudo),
		CaminhoArquivo:   "",
		VersaoTermo:      s.versaoTermo,
		StatusTermo:      models.StatusTermoAtivo,
		DataCriacao:      agora,
		Titular:          titular,
	}

	if err := s.persistirComRetry(ctx, termo); err != nil {
		return nil, err
	}

	// The artifact is rendered after the commit. A rendering failure leaves
	// the termo valid with an empty path; download stays unavailable.
	caminho := s.gerarArtefato(ctx, termo)

	s.audit.Registrar(ctx, &termo.ID, models.OperacaoAceiteCriado,
		"Termo de aceite criado com sucesso", ipOrigem, userAgent, models.OperacaoSucesso)

	s.log.WithFields(logrus.Fields{
		"termo_id":     termo.ID,
		"numero_termo": termo.NumeroTermo,
	}).Info("Termo de aceite criado com sucesso")

	return &models.TermoAceiteResponse{
		ID:              termo.ID,
		NumeroTermo:     termo.NumeroTermo,
		DataHoraAceite:  termo.DataHoraAceite,
		HashIntegridade: termo.HashIntegridade,
		CaminhoArquivo:  caminho,
		PodeDownload:    caminho != "" && s.renderer.Exists(caminho),
		Mensagem:        "Termo de aceite processado com sucesso!",
	}, nil
}

// persistirComRetry regenerates the numero and retries when the unique index
// on NUMERO_TERMO rejects the insert.
func (s *TermoService) persistirComRetry(ctx context.Context, termo *models.TermoAceite) error {
	for attempt := 1; ; attempt++ {
		termo.NumeroTermo = s.numeros.Gerar()
		err := s.repo.CreateTermo(ctx, termo)
		if err == nil {
			return nil
		}
		if !errors.Is(err, dao.ErrDuplicateEntry) {
			return serviceerror.New(serviceerror.DependencyError, "erro ao persistir termo de aceite")
		}
		s.metrics.IncrementColisoesNumeroTermo()
		if attempt >= maxNumeroAttempts {
			s.log.WithField("numero_termo", termo.NumeroTermo).
				Error("Esgotadas as tentativas de gerar número de termo único")
			return serviceerror.New(serviceerror.ConflictError,
				"não foi possível gerar um número de termo único, tente novamente")
		}
	}
}

// gerarArtefato renders and stores the printable document and backfills the
// path. Any failure is logged and leaves the termo without an artifact.
func (s *TermoService) gerarArtefato(ctx context.Context, termo *models.TermoAceite) string {
	conteudo, err := s.renderer.Render(termo)
	if err != nil {
		s.log.WithError(err).WithField("termo_id", termo.ID).Error("Falha ao renderizar documento do termo")
		return ""
	}
	caminho, err := s.renderer.Store(conteudo, termo.NumeroTermo)
	if err != nil {
		s.log.WithError(err).WithField("termo_id", termo.ID).Error("Falha ao armazenar documento do termo")
		return ""
	}
	if err := s.repo.UpdateCaminhoArquivo(ctx, termo.ID, caminho); err != nil {
		s.log.WithError(err).WithField("termo_id", termo.ID).Error("Falha ao atualizar caminho do documento")
		return ""
	}
	termo.CaminhoArquivo = caminho
	return caminho
}

// ObterTermoPorID fetches one acceptance record with its titular attached.
func (s *TermoService) ObterTermoPorID(ctx context.Context, id int64) (*models.TermoAceite, error) {
	termo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, serviceerror.New(serviceerror.DependencyError, "erro ao consultar termo")
	}
	if termo == nil {
		return nil, serviceerror.Newf(serviceerror.NotFoundError, "termo %d não encontrado", id)
	}
	return termo, nil
}

// ObterDocumento returns the stored artifact bytes for download.
func (s *TermoService) ObterDocumento(ctx context.Context, id int64) ([]byte, string, error) {
	termo, err := s.ObterTermoPorID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if termo.CaminhoArquivo == "" || !s.renderer.Exists(termo.CaminhoArquivo) {
		return nil, "", serviceerror.Newf(serviceerror.NotFoundError,
			"documento do termo %s não disponível", termo.NumeroTermo)
	}
	conteudo, err := s.renderer.Render(termo)
	if err != nil {
		return nil, "", serviceerror.New(serviceerror.InternalError, "erro ao gerar documento do termo")
	}
	return conteudo, termo.NumeroTermo, nil
}

// ValidarCpfExistente answers the advisory pre-submission check. A true
// result informs the caller; it never blocks a new submission.
func (s *TermoService) ValidarCpfExistente(ctx context.Context, cpf string) (*models.CpfCheckResponse, error) {
	if !utils.IsValidCPF(cpf) {
		return nil, serviceerror.New(serviceerror.ValidationError, "CPF inválido")
	}
	existe, err := s.repo.ExisteCpfAtivo(ctx, utils.FormatCPF(cpf))
	if err != nil {
		return nil, serviceerror.New(serviceerror.DependencyError, "erro ao consultar CPF")
	}
	resp := &models.CpfCheckResponse{Existe: existe}
	if existe {
		resp.Mensagem = "CPF já possui um termo ativo"
	} else {
		resp.Mensagem = "CPF disponível para cadastro"
	}
	return resp, nil
}

// ListarTermosPorCpf returns every acceptance record of a titular, newest
// first.
func (s *TermoService) ListarTermosPorCpf(ctx context.Context, cpf string) ([]models.TermoAceite, error) {
	if !utils.IsValidCPF(cpf) {
		return nil, serviceerror.New(serviceerror.ValidationError, "CPF inválido")
	}
	termos, err := s.repo.ListByCPF(ctx, utils.FormatCPF(cpf))
	if err != nil {
		return nil, serviceerror.New(serviceerror.DependencyError, "erro ao listar termos")
	}
	return termos, nil
}
