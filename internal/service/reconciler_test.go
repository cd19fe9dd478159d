package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/service/mocks"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
)

func novoReconciler(finder *mocks.MockTitularFinder) *TitularReconciler {
	setup := NewTestSetup()
	return NewTitularReconcilerWith(finder, fixedClock, setup.Logger)
}

func entradaTitular() *models.TitularInput {
	req := NewValidCreateRequest()
	return &req.Titular
}

func TestReconciliar_CpfDesconhecidoCriaNovoTitular(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, "529.982.247-25").Return(nil, nil)
	rec := novoReconciler(finder)

	titular, err := rec.Reconciliar(context.Background(), entradaTitular(), nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), titular.ID)
	assert.Equal(t, "529.982.247-25", titular.CPF)
	assert.Equal(t, testNow, titular.DataCadastro)
	assert.True(t, titular.IsAtivo)
	finder.AssertExpectations(t)
}

func TestReconciliar_CpfConhecidoAtualizaCampos(t *testing.T) {
	existente := &models.Titular{
		ID:           42,
		Nome:         "Maria Antiga",
		CPF:          "529.982.247-25",
		EstadoCivil:  "casada",
		DataCadastro: testNow.AddDate(-2, 0, 0),
	}
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, "529.982.247-25").Return(existente, nil)
	rec := novoReconciler(finder)

	titular, err := rec.Reconciliar(context.Background(), entradaTitular(), nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), titular.ID, "same CPF must resolve to the same record")
	assert.Equal(t, "Maria da Silva", titular.Nome)
	assert.Equal(t, "solteira", titular.EstadoCivil)
	assert.Equal(t, testNow.AddDate(-2, 0, 0), titular.DataCadastro, "original registration date is kept")
}

func TestReconciliar_NormalizaCpfSemPontuacao(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, "529.982.247-25").Return(nil, nil)
	rec := novoReconciler(finder)

	input := entradaTitular()
	input.CPF = "52998224725"

	titular, err := rec.Reconciliar(context.Background(), input, nil)

	assert.NoError(t, err)
	assert.Equal(t, "529.982.247-25", titular.CPF)
}

func TestReconciliar_QualificacaoInvalida(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	rec := novoReconciler(finder)

	input := entradaTitular()
	input.Qualificacao = "avalista"

	_, err := rec.Reconciliar(context.Background(), input, nil)

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))
	finder.AssertNotCalled(t, "GetByCPF", mock.Anything, mock.Anything)
}

func TestReconciliar_ErroDoFinder(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	rec := novoReconciler(finder)

	_, err := rec.Reconciliar(context.Background(), entradaTitular(), nil)

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.DependencyError))
}

func TestReconciliar_SubstituiListaDeDependentes(t *testing.T) {
	existente := &models.Titular{
		ID:  42,
		CPF: "529.982.247-25",
		Dependentes: []models.Dependente{
			{ID: 1, Nome: "Dependente Antigo"},
		},
	}
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, mock.Anything).Return(existente, nil)
	rec := novoReconciler(finder)

	deps := []models.DependenteInput{
		{
			Nome:           "João da Silva",
			DataNascimento: testNow.AddDate(-10, 0, 0),
			GrauParentesco: "filho",
		},
		{
			Nome:           "Ana da Silva",
			CPF:            strPtr("111.444.777-35"),
			DataNascimento: testNow.AddDate(-5, 0, 0),
			GrauParentesco: "filha",
		},
	}

	titular, err := rec.Reconciliar(context.Background(), entradaTitular(), deps)

	assert.NoError(t, err)
	assert.Len(t, titular.Dependentes, 2)
	assert.Equal(t, "João da Silva", titular.Dependentes[0].Nome)
	assert.Nil(t, titular.Dependentes[0].CPF)
	assert.Equal(t, "111.444.777-35", *titular.Dependentes[1].CPF)
	for _, dep := range titular.Dependentes {
		assert.NotEqual(t, "Dependente Antigo", dep.Nome)
	}
}

func TestReconciliar_DependenteComCpfInvalido(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)
	rec := novoReconciler(finder)

	deps := []models.DependenteInput{
		{
			Nome:           "João da Silva",
			CPF:            strPtr("111.111.111-11"),
			DataNascimento: testNow.AddDate(-10, 0, 0),
			GrauParentesco: "filho",
		},
	}

	_, err := rec.Reconciliar(context.Background(), entradaTitular(), deps)

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))
	assert.Contains(t, err.Error(), "João da Silva")
}

func TestReconciliar_LimiteDeIdadeDoDependente(t *testing.T) {
	cases := []struct {
		name       string
		nascimento time.Time
		wantErr    bool
	}{
		{"completa dezoito hoje", testNow.AddDate(-18, 0, 0), true},
		{"um dia antes de completar dezoito", testNow.AddDate(-18, 0, 1), false},
		{"dezessete anos", testNow.AddDate(-17, 0, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			finder := &mocks.MockTitularFinder{}
			finder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)
			rec := novoReconciler(finder)

			deps := []models.DependenteInput{
				{
					Nome:           "João da Silva",
					DataNascimento: tc.nascimento,
					GrauParentesco: "filho",
				},
			}

			_, err := rec.Reconciliar(context.Background(), entradaTitular(), deps)

			if tc.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "menor de 18 anos")
				assert.Contains(t, err.Error(), "João da Silva")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
