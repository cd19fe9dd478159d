package models

import "time"

// StatusTermo is the lifecycle status of an acceptance record. Only
// StatusTermoAtivo is ever assigned by this service; the remaining states
// exist for operational tooling.
type StatusTermo string

const (
	StatusTermoAtivo     StatusTermo = "ATIVO"
	StatusTermoRevogado  StatusTermo = "REVOGADO"
	StatusTermoExpirado  StatusTermo = "EXPIRADO"
	StatusTermoCancelado StatusTermo = "CANCELADO"
)

// TipoCadastro tags why the form was submitted.
const (
	TipoCadastroNovo      = "cadastro"
	TipoCadastroRenovacao = "renovacao"
	TipoCadastroInclusao  = "inclusao"
)

// TermoAceite represents the TERMO_ACEITE table: one immutable acceptance
// event. A titular accumulates one row per submission; only the rendered
// artifact path is ever backfilled after creation.
type TermoAceite struct {
	ID               int64       `db:"ID" json:"id"`
	TitularID        int64       `db:"TITULAR_ID" json:"titularId"`
	NumeroTermo      string      `db:"NUMERO_TERMO" json:"numeroTermo"`
	TipoCadastro     string      `db:"TIPO_CADASTRO" json:"tipoCadastro"`
	ConteudoTermo    string      `db:"CONTEUDO_TERMO" json:"conteudoTermo"`
	AceiteConfirmado bool        `db:"ACEITE_CONFIRMADO" json:"aceiteConfirmado"`
	DataHoraAceite   time.Time   `db:"DATA_HORA_ACEITE" json:"dataHoraAceite"`
	IpOrigem         string      `db:"IP_ORIGEM" json:"ipOrigem"`
	UserAgent        string      `db:"USER_AGENT" json:"userAgent"`
	HashIntegridade  string      `db:"HASH_INTEGRIDADE" json:"hashIntegridade"`
	CaminhoArquivo   string      `db:"CAMINHO_ARQUIVO" json:"caminhoArquivo"`
	VersaoTermo      string      `db:"VERSAO_TERMO" json:"versaoTermo"`
	StatusTermo      StatusTermo `db:"STATUS_TERMO" json:"statusTermo"`
	DataCriacao      time.Time   `db:"DATA_CRIACAO" json:"dataCriacao"`
	Titular          *Titular    `db:"-" json:"titular,omitempty"`
}
