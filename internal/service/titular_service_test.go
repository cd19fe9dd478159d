package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/service/mocks"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
)

func TestObterPorCpf(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, "529.982.247-25").
		Return(&models.Titular{ID: 5, Nome: "Maria da Silva"}, nil)
	svc := NewTitularService(finder, NewTestSetup().Logger)

	titular, err := svc.ObterPorCpf(context.Background(), "52998224725")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), titular.ID)
}

func TestObterPorCpf_NaoEncontrado(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	finder.On("GetByCPF", mock.Anything, mock.Anything).Return(nil, nil)
	svc := NewTitularService(finder, NewTestSetup().Logger)

	_, err := svc.ObterPorCpf(context.Background(), "529.982.247-25")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.NotFoundError))
}

func TestObterPorCpf_CpfInvalido(t *testing.T) {
	finder := &mocks.MockTitularFinder{}
	svc := NewTitularService(finder, NewTestSetup().Logger)

	_, err := svc.ObterPorCpf(context.Background(), "123")

	assert.Error(t, err)
	assert.True(t, serviceerror.Is(err, serviceerror.ValidationError))
	finder.AssertNotCalled(t, "GetByCPF", mock.Anything, mock.Anything)
}
