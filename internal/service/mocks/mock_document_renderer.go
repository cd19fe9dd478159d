package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// MockDocumentRenderer is a mock implementation of service.DocumentRenderer.
type MockDocumentRenderer struct {
	mock.Mock
}

func (m *MockDocumentRenderer) Render(termo *models.TermoAceite) ([]byte, error) {
	args := m.Called(termo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentRenderer) Store(conteudo []byte, numeroTermo string) (string, error) {
	args := m.Called(conteudo, numeroTermo)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRenderer) Exists(caminho string) bool {
	args := m.Called(caminho)
	return args.Bool(0)
}
