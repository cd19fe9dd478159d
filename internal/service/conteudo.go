package service

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/lgpd-forms/consent-form-api/internal/models"
)

var mesesPortugues = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

const termoTemplateText = `CREDENCIAL SESC

CONSENTIMENTO PARA TRATAMENTO DE DADOS PESSOAIS

Por meio deste instrumento, eu, {{.Nome}}, inscrito(a) no CPF nº {{.CPF}},
estado civil {{.EstadoCivil}}, natural de {{.Naturalidade}},
na qualidade de {{.Qualificacao}},
autorizo o Serviço Social do Comércio – Departamento Regional em Roraima,
inscrito no CNPJ sob nº 03.488.834/0001-86, doravante denominado CONTROLADOR,
a realizar o tratamento dos meus dados pessoais.

Escolaridade: {{.Escolaridade}}
Série/Semestre: {{.SerieSemestre}}
Tel.: {{.Telefone}}
E-mail: {{.Email}}
{{if .Dependentes}}
Dependentes menores de 18 anos ou legalmente representados:
{{range .Dependentes}}Nome: {{.Nome}} CPF: {{.CPF}} Grau de parentesco: {{.GrauParentesco}}
{{end}}{{end}}
O tratamento autorizado compreende a realização de operações como: coleta, produção,
recepção, classificação, utilização, acesso, reprodução, transmissão, distribuição,
processamento, arquivamento, armazenamento, eliminação, avaliação ou controle da informação.

Boa Vista-RR, {{.DataExtenso}}.

____________________________________________________
Assinatura do(a) declarante dos dados ou responsável legal

Aceite eletrônico realizado em: {{.DataHoraAceite}} UTC
`

var termoTemplate = template.Must(template.New("termo").Parse(termoTemplateText))

type dependenteConteudo struct {
	Nome           string
	CPF            string
	GrauParentesco string
}

type conteudoData struct {
	Nome           string
	CPF            string
	EstadoCivil    string
	Naturalidade   string
	Qualificacao   string
	Escolaridade   string
	SerieSemestre  string
	Telefone       string
	Email          string
	Dependentes    []dependenteConteudo
	DataExtenso    string
	DataHoraAceite string
}

// ConteudoBuilder renders the canonical consent text. Given the same titular
// and instant it always yields the same bytes, so the integrity hash is
// reproducible.
type ConteudoBuilder struct {
	now func() time.Time
}

func NewConteudoBuilder() *ConteudoBuilder {
	return &ConteudoBuilder{now: time.Now}
}

func NewConteudoBuilderWith(now func() time.Time) *ConteudoBuilder {
	return &ConteudoBuilder{now: now}
}

// Gerar builds the full consent text for the titular.
func (b *ConteudoBuilder) Gerar(titular *models.Titular) (string, error) {
	agora := b.now().UTC()

	data := conteudoData{
		Nome:           titular.Nome,
		CPF:            titular.CPF,
		EstadoCivil:    titular.EstadoCivil,
		Naturalidade:   titular.Naturalidade,
		Qualificacao:   titular.Qualificacao.Descricao(),
		Escolaridade:   deref(titular.Escolaridade),
		SerieSemestre:  deref(titular.SerieSemestre),
		Telefone:       deref(titular.Telefone),
		Email:          titular.Email,
		DataExtenso:    dataPorExtenso(agora),
		DataHoraAceite: agora.Format("02/01/2006 15:04:05"),
	}

	for _, dep := range titular.Dependentes {
		data.Dependentes = append(data.Dependentes, dependenteConteudo{
			Nome:           dep.Nome,
			CPF:            deref(dep.CPF),
			GrauParentesco: dep.GrauParentesco,
		})
	}

	var sb strings.Builder
	if err := termoTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render termo content: %w", err)
	}
	return sb.String(), nil
}

func dataPorExtenso(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), mesesPortugues[t.Month()-1], t.Year())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
