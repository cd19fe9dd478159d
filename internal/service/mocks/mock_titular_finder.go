package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// MockTitularFinder is a mock implementation of service.TitularFinder.
type MockTitularFinder struct {
	mock.Mock
}

func (m *MockTitularFinder) GetByCPF(ctx context.Context, cpf string) (*models.Titular, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Titular), args.Error(1)
}
