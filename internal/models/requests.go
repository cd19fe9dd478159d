package models

import "time"

// TitularInput is the API payload describing the consenting person.
type TitularInput struct {
	Nome           string            `json:"nome" binding:"required,max=200"`
	CPF            string            `json:"cpf" binding:"required"`
	RG             *string           `json:"rg,omitempty"`
	DataNascimento time.Time         `json:"dataNascimento" binding:"required"`
	EstadoCivil    string            `json:"estadoCivil" binding:"required,max=50"`
	Naturalidade   string            `json:"naturalidade" binding:"required,max=100"`
	Endereco       *string           `json:"endereco,omitempty"`
	Telefone       *string           `json:"telefone,omitempty"`
	Email          string            `json:"email" binding:"required,email"`
	Escolaridade   *string           `json:"escolaridade,omitempty"`
	SerieSemestre  *string           `json:"serieSemestre,omitempty"`
	Qualificacao   QualificacaoLegal `json:"qualificacaoLegal" binding:"required"`
}

// DependenteInput is the API payload describing one dependent. The CPF is
// optional; when present it must pass the checksum.
type DependenteInput struct {
	Nome           string    `json:"nome" binding:"required,max=200"`
	CPF            *string   `json:"cpf,omitempty"`
	DataNascimento time.Time `json:"dataNascimento" binding:"required"`
	GrauParentesco string    `json:"grauParentesco" binding:"required,max=50"`
}

// TermoAceiteCreateRequest is the API payload for submitting a consent form.
type TermoAceiteCreateRequest struct {
	TipoCadastro     string            `json:"tipoCadastro" binding:"required"`
	Titular          TitularInput      `json:"titular" binding:"required"`
	Dependentes      []DependenteInput `json:"dependentes"`
	AceiteConfirmado bool              `json:"aceiteConfirmado"`
}

// LogSearchParams filters the audit log query.
type LogSearchParams struct {
	DataInicio *time.Time
	DataFim    *time.Time
	Limit      int
	Offset     int
}
