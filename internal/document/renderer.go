// Package document renders the printable acceptance artifact and stores it
// on disk. The artifact is an HTML page styled for printing; PDF conversion
// happens on the client via the browser's print dialog.
package document

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/pkg/utils"
)

const artifactTemplateText = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Termo de Consentimento LGPD</title>
    <style>
        body { font-family: Arial, sans-serif; font-size: 14px; line-height: 1.6; margin: 40px; color: #333; }
        .header { text-align: center; margin-bottom: 40px; border-bottom: 2px solid #4285f4; padding-bottom: 20px; }
        .title { font-size: 24px; font-weight: bold; margin-bottom: 10px; color: #4285f4; }
        .subtitle { font-size: 18px; margin-bottom: 20px; color: #666; }
        .content { margin-bottom: 25px; text-align: justify; }
        .field { margin-bottom: 12px; padding: 8px; background: #f8f9fa; border-left: 4px solid #4285f4; }
        .bold { font-weight: bold; color: #4285f4; }
        .signature-area { margin-top: 60px; text-align: center; }
        .signature-line { border-bottom: 2px solid #333; width: 400px; margin: 20px auto; height: 50px; }
        .dependentes { margin: 30px 0; background: #f8f9fa; padding: 20px; border-radius: 8px; }
        .dependente-item { margin-bottom: 10px; padding: 10px; background: white; border-radius: 4px; border-left: 4px solid #34a853; }
        .metadata { margin-top: 40px; font-size: 12px; color: #666; background: #f1f3f4; padding: 20px; border-radius: 8px; }
        .checkbox { margin: 15px 0; font-size: 16px; }
        @media print { body { margin: 20px; } .no-print { display: none; } }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">CREDENCIAL SESC</div>
        <div class="checkbox">
            <label><input type="checkbox"{{if .CadastroChecked}} checked{{end}} disabled> Cadastro</label>
            <label><input type="checkbox"{{if .RenovacaoChecked}} checked{{end}} disabled> Renovação</label>
            <label><input type="checkbox"{{if .InclusaoChecked}} checked{{end}} disabled> Inclusão de dependente</label>
        </div>
        <div class="subtitle">CONSENTIMENTO PARA TRATAMENTO DE DADOS PESSOAIS</div>
    </div>
    <div class="content">
        <p>Por meio deste instrumento, eu, <span class="bold">{{.Nome}}</span>,
        inscrito(a) no CPF nº <span class="bold">{{.CPF}}</span>,
        estado civil <span class="bold">{{.EstadoCivil}}</span>,
        natural de <span class="bold">{{.Naturalidade}}</span>,
        na qualidade de <span class="bold">{{.Qualificacao}}</span>,
        autorizo o Serviço Social do Comércio – Departamento Regional em Roraima,
        inscrito no CNPJ sob nº 03.488.834/0001-86, doravante denominado CONTROLADOR,
        a realizar o tratamento dos meus dados pessoais, inclusive dados sensíveis,
        bem como os dados dos meus dependentes devidamente cadastrados,
        em razão do uso das instalações, matrículas/credenciamentos, inscrições e/ou
        participações nas ações e modalidades de cultura, esporte, lazer, assistência,
        saúde, educação, ou qualquer outra atividade promovida pela instituição.</p>
    </div>
    <div class="content">
        <h3>Dados do Titular:</h3>
        <div class="field"><strong>Escolaridade:</strong> {{.Escolaridade}}</div>
        <div class="field"><strong>Série/Semestre:</strong> {{.SerieSemestre}}</div>
        <div class="field"><strong>Telefone:</strong> {{.Telefone}}</div>
        <div class="field"><strong>E-mail:</strong> {{.Email}}</div>
    </div>
{{if .Dependentes}}    <div class="dependentes">
        <h3>Dependentes menores de 18 anos ou legalmente representados:</h3>
{{range .Dependentes}}        <div class="dependente-item">
            <strong>Nome:</strong> {{.Nome}} |
            <strong>CPF:</strong> {{.CPF}} |
            <strong>Grau de parentesco:</strong> {{.GrauParentesco}}
        </div>
{{end}}    </div>
{{end}}    <div class="content">
        <p>O tratamento autorizado compreende a realização de operações como: coleta, produção,
        recepção, classificação, utilização, acesso, reprodução, transmissão, distribuição,
        processamento, arquivamento, armazenamento, eliminação, avaliação ou controle da
        informação, modificação, comunicação, transferência, difusão ou extração, em
        conformidade com os artigos 7º e 11 da LGPD.</p>
        <p>Declaro estar ciente de que esta autorização se dá de forma voluntária, e que
        poderei, a qualquer momento, revogá-la mediante solicitação formal, conforme
        previsto na legislação vigente.</p>
    </div>
    <div class="content">
        <p><strong>Boa Vista-RR, {{.DataExtenso}}.</strong></p>
    </div>
    <div class="signature-area">
        <div class="signature-line"></div>
        <div><strong>Assinatura do(a) declarante dos dados ou responsável legal</strong></div>
    </div>
    <div class="metadata">
        <h4>DADOS DO ACEITE ELETRÔNICO:</h4>
        <div><strong>Número do Termo:</strong> {{.NumeroTermo}}</div>
        <div><strong>Data/Hora do Aceite:</strong> {{.DataHoraAceite}} UTC</div>
        <div><strong>IP de Origem:</strong> {{.IpOrigem}}</div>
        <div><strong>Hash de Integridade:</strong> {{.HashIntegridade}}</div>
        <div><strong>Versão do Termo:</strong> {{.VersaoTermo}}</div>
        <div><strong>User Agent:</strong> {{.UserAgent}}</div>
    </div>
    <div class="no-print" style="margin-top: 30px; text-align: center;">
        <button onclick="window.print()">Imprimir / Salvar como PDF</button>
    </div>
</body>
</html>
`

var artifactTemplate = template.Must(template.New("artifact").Parse(artifactTemplateText))

var mesesPortugues = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

type dependenteView struct {
	Nome           string
	CPF            string
	GrauParentesco string
}

type artifactData struct {
	CadastroChecked  bool
	RenovacaoChecked bool
	InclusaoChecked  bool
	Nome             string
	CPF              string
	EstadoCivil      string
	Naturalidade     string
	Qualificacao     string
	Escolaridade     string
	SerieSemestre    string
	Telefone         string
	Email            string
	Dependentes      []dependenteView
	DataExtenso      string
	NumeroTermo      string
	DataHoraAceite   string
	IpOrigem         string
	HashIntegridade  string
	VersaoTermo      string
	UserAgent        string
}

// Renderer materializes acceptance records as HTML files under storagePath.
type Renderer struct {
	storagePath string
	now         func() time.Time
	log         *logrus.Logger
}

func NewRenderer(storagePath string, log *logrus.Logger) *Renderer {
	return &Renderer{storagePath: storagePath, now: time.Now, log: log}
}

func NewRendererWith(storagePath string, now func() time.Time, log *logrus.Logger) *Renderer {
	return &Renderer{storagePath: storagePath, now: now, log: log}
}

// Render produces the artifact bytes for the termo. The termo must carry its
// titular.
func (r *Renderer) Render(termo *models.TermoAceite) ([]byte, error) {
	if termo.Titular == nil {
		return nil, fmt.Errorf("termo %s has no titular attached", termo.NumeroTermo)
	}
	titular := termo.Titular

	data := artifactData{
		CadastroChecked:  termo.TipoCadastro == models.TipoCadastroNovo,
		RenovacaoChecked: termo.TipoCadastro == models.TipoCadastroRenovacao,
		InclusaoChecked:  termo.TipoCadastro == models.TipoCadastroInclusao,
		Nome:             titular.Nome,
		CPF:              titular.CPF,
		EstadoCivil:      titular.EstadoCivil,
		Naturalidade:     titular.Naturalidade,
		Qualificacao:     titular.Qualificacao.Descricao(),
		Escolaridade:     orNaoInformado(titular.Escolaridade),
		SerieSemestre:    orNaoInformado(titular.SerieSemestre),
		Telefone:         orNaoInformado(titular.Telefone),
		Email:            titular.Email,
		DataExtenso:      dataPorExtenso(termo.DataHoraAceite),
		NumeroTermo:      termo.NumeroTermo,
		DataHoraAceite:   termo.DataHoraAceite.Format("02/01/2006 15:04:05"),
		IpOrigem:         termo.IpOrigem,
		HashIntegridade:  termo.HashIntegridade,
		VersaoTermo:      termo.VersaoTermo,
		UserAgent:        termo.UserAgent,
	}
	for _, dep := range titular.Dependentes {
		data.Dependentes = append(data.Dependentes, dependenteView{
			Nome:           dep.Nome,
			CPF:            orNaoInformado(dep.CPF),
			GrauParentesco: dep.GrauParentesco,
		})
	}

	var buf bytes.Buffer
	if err := artifactTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render artifact for termo %s: %w", termo.NumeroTermo, err)
	}
	return buf.Bytes(), nil
}

// Store writes the artifact to disk and returns its path. The file name
// embeds the numero and the storage timestamp.
func (r *Renderer) Store(conteudo []byte, numeroTermo string) (string, error) {
	if err := os.MkdirAll(r.storagePath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir %s: %w", r.storagePath, err)
	}
	nome := fmt.Sprintf("%s_%s.html", numeroTermo, r.now().Format("20060102_150405"))
	caminho := filepath.Join(r.storagePath, nome)
	if err := os.WriteFile(caminho, conteudo, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", caminho, err)
	}
	r.log.WithFields(logrus.Fields{
		"caminho": caminho,
		"hash":    utils.IntegrityHashBytes(conteudo),
	}).Info("Documento do termo armazenado")
	return caminho, nil
}

// Exists reports whether the stored artifact is still on disk.
func (r *Renderer) Exists(caminho string) bool {
	if caminho == "" {
		return false
	}
	info, err := os.Stat(caminho)
	return err == nil && !info.IsDir()
}

// ReadArtifact loads a stored artifact back.
func (r *Renderer) ReadArtifact(caminho string) ([]byte, error) {
	return os.ReadFile(caminho)
}

func orNaoInformado(s *string) string {
	if s == nil || *s == "" {
		return "Não informado"
	}
	return *s
}

func dataPorExtenso(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), mesesPortugues[t.Month()-1], t.Year())
}
