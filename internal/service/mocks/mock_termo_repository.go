package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// MockTermoRepository is a mock implementation of service.TermoRepository.
type MockTermoRepository struct {
	mock.Mock
}

func (m *MockTermoRepository) CreateTermo(ctx context.Context, termo *models.TermoAceite) error {
	args := m.Called(ctx, termo)
	return args.Error(0)
}

func (m *MockTermoRepository) UpdateCaminhoArquivo(ctx context.Context, termoID int64, caminho string) error {
	args := m.Called(ctx, termoID, caminho)
	return args.Error(0)
}

func (m *MockTermoRepository) GetByID(ctx context.Context, id int64) (*models.TermoAceite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TermoAceite), args.Error(1)
}

func (m *MockTermoRepository) ExisteCpfAtivo(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockTermoRepository) ListByCPF(ctx context.Context, cpf string) ([]models.TermoAceite, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TermoAceite), args.Error(1)
}
