package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
	"github.com/lgpd-forms/consent-form-api/pkg/utils"
)

// TitularReconciler resolves the submitted person data against the registry.
// A titular is identified by CPF: a known CPF has its mutable fields
// overwritten and its dependent list rebuilt, an unknown CPF yields a new
// record. The reconciler never writes; persistence happens downstream in one
// transaction with the termo itself.
type TitularReconciler struct {
	finder TitularFinder
	now    func() time.Time
	log    *logrus.Logger
}

func NewTitularReconciler(finder TitularFinder, log *logrus.Logger) *TitularReconciler {
	return &TitularReconciler{finder: finder, now: time.Now, log: log}
}

func NewTitularReconcilerWith(finder TitularFinder, now func() time.Time, log *logrus.Logger) *TitularReconciler {
	return &TitularReconciler{finder: finder, now: now, log: log}
}

// Reconciliar maps the request into a Titular ready for persistence.
// The returned titular carries ID 0 when the CPF was never seen before.
func (r *TitularReconciler) Reconciliar(ctx context.Context, input *models.TitularInput, dependentes []models.DependenteInput) (*models.Titular, error) {
	agora := r.now().UTC()
	cpf := utils.FormatCPF(input.CPF)

	if !input.Qualificacao.IsValid() {
		return nil, serviceerror.New(serviceerror.ValidationError,
			fmt.Sprintf("qualificação legal inválida: %s", input.Qualificacao))
	}

	existente, err := r.finder.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, serviceerror.New(serviceerror.DependencyError, "erro ao consultar titular por CPF")
	}

	titular := existente
	if titular == nil {
		titular = &models.Titular{
			CPF:          cpf,
			DataCadastro: agora,
		}
	} else {
		r.log.WithFields(logrus.Fields{
			"titular_id": titular.ID,
			"cpf":        cpf,
		}).Debug("Titular existente encontrado, dados serão atualizados")
	}

	titular.Nome = input.Nome
	titular.RG = input.RG
	titular.DataNascimento = input.DataNascimento
	titular.EstadoCivil = input.EstadoCivil
	titular.Naturalidade = input.Naturalidade
	titular.Endereco = input.Endereco
	titular.Telefone = input.Telefone
	titular.Email = input.Email
	titular.Escolaridade = input.Escolaridade
	titular.SerieSemestre = input.SerieSemestre
	titular.Qualificacao = input.Qualificacao
	titular.IsAtivo = true

	deps, err := r.montarDependentes(dependentes, agora)
	if err != nil {
		return nil, err
	}
	titular.Dependentes = deps

	return titular, nil
}

// montarDependentes validates and rebuilds the full dependent list. The list
// always replaces whatever the titular had before.
func (r *TitularReconciler) montarDependentes(inputs []models.DependenteInput, agora time.Time) ([]models.Dependente, error) {
	deps := make([]models.Dependente, 0, len(inputs))
	for _, in := range inputs {
		dep := models.Dependente{
			Nome:           in.Nome,
			DataNascimento: in.DataNascimento,
			GrauParentesco: in.GrauParentesco,
			IsAtivo:        true,
			DataCadastro:   agora,
		}
		if in.CPF != nil && *in.CPF != "" {
			if !utils.IsValidCPF(*in.CPF) {
				return nil, serviceerror.New(serviceerror.ValidationError,
					fmt.Sprintf("CPF inválido para o dependente %s", in.Nome))
			}
			formatado := utils.FormatCPF(*in.CPF)
			dep.CPF = &formatado
		}
		if !dep.IsMenorIdade(agora) {
			return nil, serviceerror.New(serviceerror.ValidationError,
				fmt.Sprintf("Dependente %s deve ser menor de 18 anos.", in.Nome))
		}
		deps = append(deps, dep)
	}
	return deps, nil
}
