package models

import (
	"time"

	"github.com/lgpd-forms/consent-form-api/pkg/utils"
)

// QualificacaoLegal identifies in which legal capacity the titular consents.
type QualificacaoLegal string

const (
	QualificacaoTitular          QualificacaoLegal = "titular"
	QualificacaoDependenteMaior  QualificacaoLegal = "dependente_maior"
	QualificacaoResponsavelMenor QualificacaoLegal = "responsavel_menor"
	QualificacaoResponsavelOrfao QualificacaoLegal = "responsavel_orfao"
	QualificacaoCuradorTutor     QualificacaoLegal = "curador_tutor"
)

// IsValid reports whether the value is one of the known qualifications.
func (q QualificacaoLegal) IsValid() bool {
	switch q {
	case QualificacaoTitular, QualificacaoDependenteMaior, QualificacaoResponsavelMenor,
		QualificacaoResponsavelOrfao, QualificacaoCuradorTutor:
		return true
	}
	return false
}

// Descricao returns the human-readable description used in the rendered term.
func (q QualificacaoLegal) Descricao() string {
	switch q {
	case QualificacaoTitular:
		return "Titular"
	case QualificacaoDependenteMaior:
		return "Dependente maior de idade"
	case QualificacaoResponsavelMenor:
		return "Responsável por menor trabalhador"
	case QualificacaoResponsavelOrfao:
		return "Responsável por dependente órfão do titular"
	case QualificacaoCuradorTutor:
		return "Curador, Tutor ou Guardião legal"
	default:
		return "Não especificado"
	}
}

// Titular represents the TITULAR table: the natural person the consent is
// about. The CPF is globally unique; every other field is overwritten by the
// latest submission.
type Titular struct {
	ID              int64             `db:"ID" json:"id"`
	Nome            string            `db:"NOME" json:"nome"`
	CPF             string            `db:"CPF" json:"cpf"`
	RG              *string           `db:"RG" json:"rg,omitempty"`
	DataNascimento  time.Time         `db:"DATA_NASCIMENTO" json:"dataNascimento"`
	EstadoCivil     string            `db:"ESTADO_CIVIL" json:"estadoCivil"`
	Naturalidade    string            `db:"NATURALIDADE" json:"naturalidade"`
	Endereco        *string           `db:"ENDERECO" json:"endereco,omitempty"`
	Telefone        *string           `db:"TELEFONE" json:"telefone,omitempty"`
	Email           string            `db:"EMAIL" json:"email"`
	Escolaridade    *string           `db:"ESCOLARIDADE" json:"escolaridade,omitempty"`
	SerieSemestre   *string           `db:"SERIE_SEMESTRE" json:"serieSemestre,omitempty"`
	Qualificacao    QualificacaoLegal `db:"QUALIFICACAO_LEGAL" json:"qualificacaoLegal"`
	IsAtivo         bool              `db:"IS_ATIVO" json:"isAtivo"`
	DataCadastro    time.Time         `db:"DATA_CADASTRO" json:"dataCadastro"`
	Dependentes     []Dependente      `db:"-" json:"dependentes"`
}

// Dependente represents the DEPENDENTE table: a minor (or legally
// represented) person covered by the titular's consent. The whole collection
// is replaced on every resubmission.
type Dependente struct {
	ID             int64     `db:"ID" json:"id"`
	TitularID      int64     `db:"TITULAR_ID" json:"titularId"`
	Nome           string    `db:"NOME" json:"nome"`
	CPF            *string   `db:"CPF" json:"cpf,omitempty"`
	DataNascimento time.Time `db:"DATA_NASCIMENTO" json:"dataNascimento"`
	GrauParentesco string    `db:"GRAU_PARENTESCO" json:"grauParentesco"`
	IsAtivo        bool      `db:"IS_ATIVO" json:"isAtivo"`
	DataCadastro   time.Time `db:"DATA_CADASTRO" json:"dataCadastro"`
}

// Idade returns the dependent's age in whole years at the reference date.
func (d *Dependente) Idade(referencia time.Time) int {
	return utils.IdadeEm(d.DataNascimento, referencia)
}

// IsMenorIdade reports whether the dependent is under 18 at the reference date.
func (d *Dependente) IsMenorIdade(referencia time.Time) bool {
	return d.Idade(referencia) < 18
}
