package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lgpd-forms/consent-form-api/internal/dao"
	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
)

func TestCriarTermoAceite_CpfInvalidoNuncaTocaNoBanco(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()
	req.Titular.CPF = "123.456.789-00"

	resp, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))

	setup.MockRepo.AssertNotCalled(t, "CreateTermo", mock.Anything, mock.Anything)
	setup.MockRepo.AssertNotCalled(t, "ExisteCpfAtivo", mock.Anything, mock.Anything)
	setup.MockFinder.AssertNotCalled(t, "GetByCPF", mock.Anything, mock.Anything)
}

func TestCriarTermoAceite_AceiteNaoConfirmado(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()
	req.AceiteConfirmado = false

	_, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))
	setup.MockRepo.AssertNotCalled(t, "CreateTermo", mock.Anything, mock.Anything)
}

func TestCriarTermoAceite_TipoCadastroInvalido(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()
	req.TipoCadastro = "transferencia"

	_, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))
}

func TestCriarTermoAceite_FluxoCompleto(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()

	setup.MockFinder.On("GetByCPF", mock.Anything, "529.982.247-25").Return(nil, nil)
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.AnythingOfType("*models.TermoAceite")).
		Run(func(args mock.Arguments) {
			termo := args.Get(1).(*models.TermoAceite)
			termo.ID = 7
		}).Return(nil)
	setup.MockRenderer.On("Render", mock.Anything).Return([]byte("<html>doc</html>"), nil)
	setup.MockRenderer.On("Store", mock.Anything, mock.Anything).Return("/docs/TRM_test.html", nil)
	setup.MockRenderer.On("Exists", "/docs/TRM_test.html").Return(true)
	setup.MockRepo.On("UpdateCaminhoArquivo", mock.Anything, int64(7), "/docs/TRM_test.html").Return(nil)
	setup.MockAudit.On("Registrar", mock.Anything, mock.Anything, models.OperacaoAceiteCriado,
		mock.Anything, "10.0.0.1", "test-agent", models.OperacaoSucesso).Return()

	resp, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.NotEmpty(t, resp.NumeroTermo)
	assert.Regexp(t, `^[0-9A-F]{64}$`, resp.HashIntegridade)
	assert.Equal(t, "/docs/TRM_test.html", resp.CaminhoArquivo)
	assert.True(t, resp.PodeDownload)

	setup.MockRepo.AssertExpectations(t)
	setup.MockRenderer.AssertExpectations(t)
	setup.MockAudit.AssertExpectations(t)
}

func TestCriarTermoAceite_HashCasaComConteudoPersistido(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()

	var persistido *models.TermoAceite
	setup.MockFinder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persistido = args.Get(1).(*models.TermoAceite)
			persistido.ID = 1
		}).Return(nil)
	setup.MockRenderer.On("Render", mock.Anything).Return([]byte("doc"), nil)
	setup.MockRenderer.On("Store", mock.Anything, mock.Anything).Return("/docs/x.html", nil)
	setup.MockRenderer.On("Exists", mock.Anything).Return(true)
	setup.MockRepo.On("UpdateCaminhoArquivo", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	setup.MockAudit.On("Registrar", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	resp, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.NoError(t, err)
	// Recomputing the digest over the stored content must reproduce the
	// stored digest exactly.
	assert.Equal(t, persistido.HashIntegridade, resp.HashIntegridade)
	builder := NewConteudoBuilderWith(fixedClock)
	conteudo, err := builder.Gerar(persistido.Titular)
	assert.NoError(t, err)
	assert.Equal(t, conteudo, persistido.ConteudoTermo)
}

func TestCriarTermoAceite_ColisaoDeNumeroRegeneraERetenta(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()

	setup.MockFinder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)

	numeros := make([]string, 0, 2)
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			termo := args.Get(1).(*models.TermoAceite)
			numeros = append(numeros, termo.NumeroTermo)
		}).Return(dao.ErrDuplicateEntry).Once()
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			termo := args.Get(1).(*models.TermoAceite)
			numeros = append(numeros, termo.NumeroTermo)
			termo.ID = 9
		}).Return(nil).Once()
	setup.MockRenderer.On("Render", mock.Anything).Return([]byte("doc"), nil)
	setup.MockRenderer.On("Store", mock.Anything, mock.Anything).Return("/docs/x.html", nil)
	setup.MockRenderer.On("Exists", mock.Anything).Return(true)
	setup.MockRepo.On("UpdateCaminhoArquivo", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	setup.MockAudit.On("Registrar", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	resp, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	assert.Len(t, numeros, 2)
	assert.NotEqual(t, numeros[0], numeros[1], "a fresh numero must be generated after a collision")
}

func TestCriarTermoAceite_ColisoesEsgotamTentativas(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()

	setup.MockFinder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.Anything).Return(dao.ErrDuplicateEntry)
	setup.MockAudit.On("Registrar", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ConflictError))
	setup.MockRepo.AssertNumberOfCalls(t, "CreateTermo", maxNumeroAttempts)
}

func TestCriarTermoAceite_FalhaDeBancoViraCodigoOpaco(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()

	setup.MockFinder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.Anything).Return(errors.New("driver: bad connection"))
	setup.MockAudit.On("Registrar", mock.Anything, (*int64)(nil), models.OperacaoAceiteErro,
		mock.Anything, "10.0.0.1", "test-agent", models.OperacaoErro).Return()

	_, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.InternalError))
	assert.NotContains(t, err.Error(), "bad connection", "internal detail must not leak to the caller")
	setup.MockAudit.AssertExpectations(t)
}

func TestCriarTermoAceite_FalhaNaRenderizacaoNaoInvalidaOTermo(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()

	setup.MockFinder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.TermoAceite).ID = 3
		}).Return(nil)
	setup.MockRenderer.On("Render", mock.Anything).Return(nil, errors.New("template exploded"))
	setup.MockAudit.On("Registrar", mock.Anything, mock.Anything, models.OperacaoAceiteCriado,
		mock.Anything, mock.Anything, mock.Anything, models.OperacaoSucesso).Return()

	resp, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.NoError(t, err, "the committed termo survives a rendering failure")
	assert.Empty(t, resp.CaminhoArquivo)
	assert.False(t, resp.PodeDownload)
	setup.MockRepo.AssertNotCalled(t, "UpdateCaminhoArquivo", mock.Anything, mock.Anything, mock.Anything)
}

func TestCriarTermoAceite_InclusaoReutilizaTitularComNovoNumero(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()
	req.TipoCadastro = models.TipoCadastroInclusao
	req.Dependentes = []models.DependenteInput{
		{
			Nome:           "João da Silva",
			DataNascimento: testNow.AddDate(-10, 0, 0),
			GrauParentesco: "filho",
		},
	}

	existente := &models.Titular{ID: 42, CPF: "529.982.247-25"}
	setup.MockFinder.On("GetByCPF", mock.Anything, "529.982.247-25").Return(existente, nil)

	var persistido *models.TermoAceite
	setup.MockRepo.On("CreateTermo", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persistido = args.Get(1).(*models.TermoAceite)
			persistido.ID = 8
		}).Return(nil)
	setup.MockRenderer.On("Render", mock.Anything).Return([]byte("doc"), nil)
	setup.MockRenderer.On("Store", mock.Anything, mock.Anything).Return("/docs/x.html", nil)
	setup.MockRenderer.On("Exists", mock.Anything).Return(true)
	setup.MockRepo.On("UpdateCaminhoArquivo", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	setup.MockAudit.On("Registrar", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	resp, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), persistido.Titular.ID, "existing titular must be reused")
	assert.Len(t, persistido.Titular.Dependentes, 1)
	assert.NotEmpty(t, resp.NumeroTermo, "every submission gets its own numero")
	assert.Equal(t, models.TipoCadastroInclusao, persistido.TipoCadastro)
}

func TestCriarTermoAceite_DependenteAdultoNaoEscreveNada(t *testing.T) {
	setup := NewTestSetup()
	req := NewValidCreateRequest()
	req.Dependentes = []models.DependenteInput{
		{
			Nome:           "Carlos da Silva",
			DataNascimento: testNow.AddDate(-25, 0, 0),
			GrauParentesco: "filho",
		},
	}
	setup.MockFinder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := setup.Service.CriarTermoAceite(context.Background(), req, "10.0.0.1", "test-agent")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))
	assert.Contains(t, err.Error(), "Carlos da Silva")
	setup.MockRepo.AssertNotCalled(t, "CreateTermo", mock.Anything, mock.Anything)
	setup.MockRepo.AssertNotCalled(t, "UpdateCaminhoArquivo", mock.Anything, mock.Anything, mock.Anything)
}

func TestObterTermoPorID_NaoEncontrado(t *testing.T) {
	setup := NewTestSetup()
	setup.MockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := setup.Service.ObterTermoPorID(context.Background(), 99)

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.NotFoundError))
}

func TestValidarCpfExistente(t *testing.T) {
	setup := NewTestSetup()
	setup.MockRepo.On("ExisteCpfAtivo", mock.Anything, "529.982.247-25").Return(true, nil)

	resp, err := setup.Service.ValidarCpfExistente(context.Background(), "52998224725")

	assert.NoError(t, err)
	assert.True(t, resp.Existe)
	assert.Contains(t, resp.Mensagem, "termo ativo")
}

func TestValidarCpfExistente_CpfInvalido(t *testing.T) {
	setup := NewTestSetup()

	_, err := setup.Service.ValidarCpfExistente(context.Background(), "000.000.000-00")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))
	setup.MockRepo.AssertNotCalled(t, "ExisteCpfAtivo", mock.Anything, mock.Anything)
}

func TestListarTermosPorCpf(t *testing.T) {
	setup := NewTestSetup()
	termos := []models.TermoAceite{{ID: 2}, {ID: 1}}
	setup.MockRepo.On("ListByCPF", mock.Anything, "529.982.247-25").Return(termos, nil)

	resultado, err := setup.Service.ListarTermosPorCpf(context.Background(), "529.982.247-25")

	assert.NoError(t, err)
	assert.Len(t, resultado, 2)
}
