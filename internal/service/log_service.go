package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mssola/useragent"
	"github.com/sirupsen/logrus"

	"github.com/lgpd-forms/consent-form-api/internal/dao"
	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
)

// LogService writes and queries audit entries. Registrar is best-effort: a
// failed insert is logged and swallowed so the business operation that
// produced it is never rolled back over bookkeeping.
type LogService struct {
	logDAO *dao.LogAuditoriaDAO
	log    *logrus.Logger
}

func NewLogService(logDAO *dao.LogAuditoriaDAO, log *logrus.Logger) *LogService {
	return &LogService{logDAO: logDAO, log: log}
}

// Registrar appends one audit entry. Implements AuditSink.
func (s *LogService) Registrar(ctx context.Context, termoID *int64, tipoOperacao, descricao, ipOrigem, userAgent string, status models.StatusOperacao) {
	entry := &models.LogAuditoria{
		TermoAceiteID:    termoID,
		TipoOperacao:     tipoOperacao,
		Descricao:        enriquecerDescricao(descricao, userAgent),
		IpOrigem:         ipOrigem,
		DataHoraOperacao: time.Now().UTC(),
		StatusOperacao:   status,
	}
	if userAgent != "" {
		entry.UserAgent = &userAgent
	}

	if err := s.logDAO.Create(ctx, entry); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"tipo_operacao": tipoOperacao,
			"ip_origem":     ipOrigem,
		}).Error("Falha ao registrar log de auditoria")
	}
}

// Listar returns audit entries filtered by period.
func (s *LogService) Listar(ctx context.Context, params models.LogSearchParams) ([]models.LogAuditoria, error) {
	entries, err := s.logDAO.List(ctx, params)
	if err != nil {
		s.log.WithError(err).Error("Falha ao consultar logs de auditoria")
		return nil, serviceerror.New(serviceerror.DependencyError, "erro ao consultar logs de auditoria")
	}
	return entries, nil
}

// enriquecerDescricao appends a browser and OS summary parsed from the raw
// user agent, when one is recognizable.
func enriquecerDescricao(descricao, rawUA string) string {
	if rawUA == "" {
		return descricao
	}
	ua := useragent.New(rawUA)
	nome, versao := ua.Browser()
	if nome == "" {
		return descricao
	}
	resumo := nome
	if versao != "" {
		resumo = fmt.Sprintf("%s %s", nome, versao)
	}
	if so := ua.OS(); so != "" {
		resumo = fmt.Sprintf("%s, %s", resumo, so)
	}
	return fmt.Sprintf("%s [%s]", descricao, resumo)
}
