package models

import "time"

// StatusOperacao is the outcome recorded in an audit entry.
type StatusOperacao string

const (
	OperacaoSucesso   StatusOperacao = "SUCESSO"
	OperacaoErro      StatusOperacao = "ERRO"
	OperacaoPendente  StatusOperacao = "PENDENTE"
	OperacaoCancelado StatusOperacao = "CANCELADO"
)

// Operation tags written by the acceptance flow.
const (
	OperacaoAceiteCriado = "ACEITE_CRIADO"
	OperacaoAceiteErro   = "ACEITE_ERRO"
)

// LogAuditoria represents the LOG_AUDITORIA table. Rows are append-only and
// written best-effort: a failed audit insert never fails the operation that
// produced it.
type LogAuditoria struct {
	ID               int64          `db:"ID" json:"id"`
	TermoAceiteID    *int64         `db:"TERMO_ACEITE_ID" json:"termoAceiteId,omitempty"`
	TipoOperacao     string         `db:"TIPO_OPERACAO" json:"tipoOperacao"`
	Descricao        string         `db:"DESCRICAO" json:"descricao"`
	IpOrigem         string         `db:"IP_ORIGEM" json:"ipOrigem"`
	UserAgent        *string        `db:"USER_AGENT" json:"userAgent,omitempty"`
	DataHoraOperacao time.Time      `db:"DATA_HORA_OPERACAO" json:"dataHoraOperacao"`
	DadosAntes       *string        `db:"DADOS_ANTES" json:"dadosAntes,omitempty"`
	DadosDepois      *string        `db:"DADOS_DEPOIS" json:"dadosDepois,omitempty"`
	StatusOperacao   StatusOperacao `db:"STATUS_OPERACAO" json:"statusOperacao"`
}
