package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lgpd-forms/consent-form-api/internal/database"
	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// TitularDAO handles database operations for titulares and their dependents
type TitularDAO struct {
	db *database.DB
}

// NewTitularDAO creates a new TitularDAO instance
func NewTitularDAO(db *database.DB) *TitularDAO {
	return &TitularDAO{db: db}
}

const titularColumns = `
	ID, NOME, CPF, RG, DATA_NASCIMENTO, ESTADO_CIVIL, NATURALIDADE,
	ENDERECO, TELEFONE, EMAIL, ESCOLARIDADE, SERIE_SEMESTRE,
	QUALIFICACAO_LEGAL, IS_ATIVO, DATA_CADASTRO`

// GetByCPF retrieves a titular by CPF with dependents attached. Returns
// (nil, nil) when no titular exists for the CPF.
func (dao *TitularDAO) GetByCPF(ctx context.Context, cpf string) (*models.Titular, error) {
	query := `SELECT` + titularColumns + `
		FROM TITULAR
		WHERE CPF = ?`

	var titular models.Titular
	err := dao.db.GetContext(ctx, &titular, query, cpf)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get titular by CPF: %w", err)
	}

	dependentes, err := dao.GetDependentes(ctx, titular.ID)
	if err != nil {
		return nil, err
	}
	titular.Dependentes = dependentes

	return &titular, nil
}

// GetByID retrieves a titular by primary key with dependents attached.
func (dao *TitularDAO) GetByID(ctx context.Context, id int64) (*models.Titular, error) {
	query := `SELECT` + titularColumns + `
		FROM TITULAR
		WHERE ID = ?`

	var titular models.Titular
	err := dao.db.GetContext(ctx, &titular, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get titular: %w", err)
	}

	dependentes, err := dao.GetDependentes(ctx, titular.ID)
	if err != nil {
		return nil, err
	}
	titular.Dependentes = dependentes

	return &titular, nil
}

// GetDependentes retrieves the dependent collection of a titular.
func (dao *TitularDAO) GetDependentes(ctx context.Context, titularID int64) ([]models.Dependente, error) {
	query := `
		SELECT ID, TITULAR_ID, NOME, CPF, DATA_NASCIMENTO, GRAU_PARENTESCO,
		       IS_ATIVO, DATA_CADASTRO
		FROM DEPENDENTE
		WHERE TITULAR_ID = ?
		ORDER BY ID`

	dependentes := []models.Dependente{}
	if err := dao.db.SelectContext(ctx, &dependentes, query, titularID); err != nil {
		return nil, fmt.Errorf("failed to get dependentes: %w", err)
	}
	return dependentes, nil
}
