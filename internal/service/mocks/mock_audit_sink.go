package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// MockAuditSink is a mock implementation of service.AuditSink.
type MockAuditSink struct {
	mock.Mock
}

func (m *MockAuditSink) Registrar(ctx context.Context, termoID *int64, tipoOperacao, descricao, ipOrigem, userAgent string, status models.StatusOperacao) {
	m.Called(ctx, termoID, tipoOperacao, descricao, ipOrigem, userAgent, status)
}
