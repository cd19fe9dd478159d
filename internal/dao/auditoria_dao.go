package dao

import (
	"context"
	"fmt"

	"github.com/lgpd-forms/consent-form-api/internal/database"
	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// LogAuditoriaDAO handles database operations for the append-only audit log
type LogAuditoriaDAO struct {
	db *database.DB
}

// NewLogAuditoriaDAO creates a new LogAuditoriaDAO instance
func NewLogAuditoriaDAO(db *database.DB) *LogAuditoriaDAO {
	return &LogAuditoriaDAO{db: db}
}

// Create appends one audit entry.
func (dao *LogAuditoriaDAO) Create(ctx context.Context, entry *models.LogAuditoria) error {
	query := `
		INSERT INTO LOG_AUDITORIA (
			TERMO_ACEITE_ID, TIPO_OPERACAO, DESCRICAO, IP_ORIGEM,
			USER_AGENT, DATA_HORA_OPERACAO, DADOS_ANTES, DADOS_DEPOIS,
			STATUS_OPERACAO
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		entry.TermoAceiteID,
		entry.TipoOperacao,
		entry.Descricao,
		entry.IpOrigem,
		entry.UserAgent,
		entry.DataHoraOperacao,
		entry.DadosAntes,
		entry.DadosDepois,
		entry.StatusOperacao,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read audit entry id: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns audit entries filtered by period, newest first.
func (dao *LogAuditoriaDAO) List(ctx context.Context, params models.LogSearchParams) ([]models.LogAuditoria, error) {
	query := `
		SELECT ID, TERMO_ACEITE_ID, TIPO_OPERACAO, DESCRICAO, IP_ORIGEM,
		       USER_AGENT, DATA_HORA_OPERACAO, DADOS_ANTES, DADOS_DEPOIS,
		       STATUS_OPERACAO
		FROM LOG_AUDITORIA`

	args := []interface{}{}
	where := ""
	if params.DataInicio != nil {
		where += " WHERE DATA_HORA_OPERACAO >= ?"
		args = append(args, *params.DataInicio)
	}
	if params.DataFim != nil {
		if where == "" {
			where += " WHERE"
		} else {
			where += " AND"
		}
		where += " DATA_HORA_OPERACAO <= ?"
		args = append(args, *params.DataFim)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query += where + " ORDER BY DATA_HORA_OPERACAO DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	entries := []models.LogAuditoria{}
	if err := dao.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
