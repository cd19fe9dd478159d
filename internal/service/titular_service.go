package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
	"github.com/lgpd-forms/consent-form-api/pkg/utils"
)

// TitularService exposes read-only titular lookups.
type TitularService struct {
	finder TitularFinder
	log    *logrus.Logger
}

func NewTitularService(finder TitularFinder, log *logrus.Logger) *TitularService {
	return &TitularService{finder: finder, log: log}
}

// ObterPorCpf fetches a titular with dependents by CPF.
func (s *TitularService) ObterPorCpf(ctx context.Context, cpf string) (*models.Titular, error) {
	if !utils.IsValidCPF(cpf) {
		return nil, serviceerror.New(serviceerror.ValidationError, "CPF inválido")
	}
	titular, err := s.finder.GetByCPF(ctx, utils.FormatCPF(cpf))
	if err != nil {
		s.log.WithError(err).Error("Falha ao consultar titular por CPF")
		return nil, serviceerror.New(serviceerror.DependencyError, "erro ao consultar titular")
	}
	if titular == nil {
		return nil, serviceerror.New(serviceerror.NotFoundError, "titular não encontrado")
	}
	return titular, nil
}
