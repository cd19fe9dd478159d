package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/lgpd-forms/consent-form-api/internal/database"
	"github.com/lgpd-forms/consent-form-api/internal/models"
)

// ErrDuplicateEntry marks a unique-index violation (CPF or numero do termo).
// Callers decide whether it is retryable.
var ErrDuplicateEntry = errors.New("duplicate entry")

// mysqlDuplicateEntry is MySQL error 1062 (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

func wrapDuplicate(err error, context string) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%s: %w", context, ErrDuplicateEntry)
	}
	return fmt.Errorf("%s: %w", context, err)
}

// TermoAceiteDAO handles database operations for acceptance records
type TermoAceiteDAO struct {
	db         *database.DB
	titularDAO *TitularDAO
}

// NewTermoAceiteDAO creates a new TermoAceiteDAO instance
func NewTermoAceiteDAO(db *database.DB, titularDAO *TitularDAO) *TermoAceiteDAO {
	return &TermoAceiteDAO{db: db, titularDAO: titularDAO}
}

const termoColumns = `
	ID, TITULAR_ID, NUMERO_TERMO, TIPO_CADASTRO, CONTEUDO_TERMO,
	ACEITE_CONFIRMADO, DATA_HORA_ACEITE, IP_ORIGEM, USER_AGENT,
	HASH_INTEGRIDADE, CAMINHO_ARQUIVO, VERSAO_TERMO, STATUS_TERMO,
	DATA_CRIACAO`

// CreateTermo persists one acceptance record together with its reconciled
// titular in a single transaction: the titular row is inserted or updated,
// the dependent collection is fully replaced, and the termo row is inserted.
// Unique-index violations surface as ErrDuplicateEntry.
func (dao *TermoAceiteDAO) CreateTermo(ctx context.Context, termo *models.TermoAceite) error {
	if termo.Titular == nil {
		return fmt.Errorf("termo sem titular associado")
	}

	return dao.db.WithTransaction(ctx, func(tx *database.Transaction) error {
		titular := termo.Titular

		if titular.ID == 0 {
			if err := dao.insertTitular(ctx, tx, titular); err != nil {
				return err
			}
		} else {
			if err := dao.updateTitular(ctx, tx, titular); err != nil {
				return err
			}
			if err := dao.deleteDependentes(ctx, tx, titular.ID); err != nil {
				return err
			}
		}

		for i := range titular.Dependentes {
			titular.Dependentes[i].TitularID = titular.ID
			if err := dao.insertDependente(ctx, tx, &titular.Dependentes[i]); err != nil {
				return err
			}
		}

		termo.TitularID = titular.ID
		return dao.insertTermo(ctx, tx, termo)
	})
}

func (dao *TermoAceiteDAO) insertTitular(ctx context.Context, tx *database.Transaction, titular *models.Titular) error {
	query := `
		INSERT INTO TITULAR (
			NOME, CPF, RG, DATA_NASCIMENTO, ESTADO_CIVIL, NATURALIDADE,
			ENDERECO, TELEFONE, EMAIL, ESCOLARIDADE, SERIE_SEMESTRE,
			QUALIFICACAO_LEGAL, IS_ATIVO, DATA_CADASTRO
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(
		ctx,
		query,
		titular.Nome,
		titular.CPF,
		titular.RG,
		titular.DataNascimento,
		titular.EstadoCivil,
		titular.Naturalidade,
		titular.Endereco,
		titular.Telefone,
		titular.Email,
		titular.Escolaridade,
		titular.SerieSemestre,
		titular.Qualificacao,
		titular.IsAtivo,
		titular.DataCadastro,
	)
	if err != nil {
		return wrapDuplicate(err, "failed to insert titular")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read titular id: %w", err)
	}
	titular.ID = id
	return nil
}

func (dao *TermoAceiteDAO) updateTitular(ctx context.Context, tx *database.Transaction, titular *models.Titular) error {
	query := `
		UPDATE TITULAR
		SET NOME = ?, RG = ?, DATA_NASCIMENTO = ?, ESTADO_CIVIL = ?,
		    NATURALIDADE = ?, ENDERECO = ?, TELEFONE = ?, EMAIL = ?,
		    ESCOLARIDADE = ?, SERIE_SEMESTRE = ?, QUALIFICACAO_LEGAL = ?,
		    IS_ATIVO = ?
		WHERE ID = ?`

	result, err := tx.ExecContext(
		ctx,
		query,
		titular.Nome,
		titular.RG,
		titular.DataNascimento,
		titular.EstadoCivil,
		titular.Naturalidade,
		titular.Endereco,
		titular.Telefone,
		titular.Email,
		titular.Escolaridade,
		titular.SerieSemestre,
		titular.Qualificacao,
		titular.IsAtivo,
		titular.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update titular: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("titular not found: %d", titular.ID)
	}
	return nil
}

func (dao *TermoAceiteDAO) deleteDependentes(ctx context.Context, tx *database.Transaction, titularID int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM DEPENDENTE WHERE TITULAR_ID = ?`, titularID); err != nil {
		return fmt.Errorf("failed to delete dependentes: %w", err)
	}
	return nil
}

func (dao *TermoAceiteDAO) insertDependente(ctx context.Context, tx *database.Transaction, dep *models.Dependente) error {
	query := `
		INSERT INTO DEPENDENTE (
			TITULAR_ID, NOME, CPF, DATA_NASCIMENTO, GRAU_PARENTESCO,
			IS_ATIVO, DATA_CADASTRO
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(
		ctx,
		query,
		dep.TitularID,
		dep.Nome,
		dep.CPF,
		dep.DataNascimento,
		dep.GrauParentesco,
		dep.IsAtivo,
		dep.DataCadastro,
	)
	if err != nil {
		return wrapDuplicate(err, "failed to insert dependente")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read dependente id: %w", err)
	}
	dep.ID = id
	return nil
}

func (dao *TermoAceiteDAO) insertTermo(ctx context.Context, tx *database.Transaction, termo *models.TermoAceite) error {
	query := `
		INSERT INTO TERMO_ACEITE (
			TITULAR_ID, NUMERO_TERMO, TIPO_CADASTRO, CONTEUDO_TERMO,
			ACEITE_CONFIRMADO, DATA_HORA_ACEITE, IP_ORIGEM, USER_AGENT,
			HASH_INTEGRIDADE, CAMINHO_ARQUIVO, VERSAO_TERMO, STATUS_TERMO,
			DATA_CRIACAO
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(
		ctx,
		query,
		termo.TitularID,
		termo.NumeroTermo,
		termo.TipoCadastro,
		termo.ConteudoTermo,
		termo.AceiteConfirmado,
		termo.DataHoraAceite,
		termo.IpOrigem,
		termo.UserAgent,
		termo.HashIntegridade,
		termo.CaminhoArquivo,
		termo.VersaoTermo,
		termo.StatusTermo,
		termo.DataCriacao,
	)
	if err != nil {
		return wrapDuplicate(err, "failed to insert termo de aceite")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read termo id: %w", err)
	}
	termo.ID = id
	return nil
}

// UpdateCaminhoArquivo backfills the rendered-artifact path. This is the only
// mutation an acceptance record ever receives.
func (dao *TermoAceiteDAO) UpdateCaminhoArquivo(ctx context.Context, termoID int64, caminho string) error {
	result, err := dao.db.ExecContext(ctx,
		`UPDATE TERMO_ACEITE SET CAMINHO_ARQUIVO = ? WHERE ID = ?`, caminho, termoID)
	if err != nil {
		return fmt.Errorf("failed to update caminho do arquivo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("termo not found: %d", termoID)
	}
	return nil
}

// GetByID retrieves an acceptance record with titular and dependents.
// Returns (nil, nil) when no record exists.
func (dao *TermoAceiteDAO) GetByID(ctx context.Context, id int64) (*models.TermoAceite, error) {
	query := `SELECT` + termoColumns + `
		FROM TERMO_ACEITE
		WHERE ID = ?`

	var termo models.TermoAceite
	err := dao.db.GetContext(ctx, &termo, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get termo: %w", err)
	}

	titular, err := dao.titularDAO.GetByID(ctx, termo.TitularID)
	if err != nil {
		return nil, err
	}
	termo.Titular = titular

	return &termo, nil
}

// ExisteCpfAtivo reports whether the CPF belongs to an active titular with at
// least one active acceptance record.
func (dao *TermoAceiteDAO) ExisteCpfAtivo(ctx context.Context, cpf string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM TERMO_ACEITE ta
			JOIN TITULAR t ON t.ID = ta.TITULAR_ID
			WHERE t.CPF = ? AND t.IS_ATIVO = 1 AND ta.STATUS_TERMO = ?
		)`

	var existe bool
	if err := dao.db.GetContext(ctx, &existe, query, cpf, models.StatusTermoAtivo); err != nil {
		return false, fmt.Errorf("failed to check CPF: %w", err)
	}
	return existe, nil
}

// ListByCPF returns the acceptance history of a CPF, newest first.
func (dao *TermoAceiteDAO) ListByCPF(ctx context.Context, cpf string) ([]models.TermoAceite, error) {
	query := `
		SELECT ta.ID, ta.TITULAR_ID, ta.NUMERO_TERMO, ta.TIPO_CADASTRO,
		       ta.CONTEUDO_TERMO, ta.ACEITE_CONFIRMADO, ta.DATA_HORA_ACEITE,
		       ta.IP_ORIGEM, ta.USER_AGENT, ta.HASH_INTEGRIDADE,
		       ta.CAMINHO_ARQUIVO, ta.VERSAO_TERMO, ta.STATUS_TERMO,
		       ta.DATA_CRIACAO
		FROM TERMO_ACEITE ta
		JOIN TITULAR t ON t.ID = ta.TITULAR_ID
		WHERE t.CPF = ?
		ORDER BY ta.DATA_HORA_ACEITE DESC`

	termos := []models.TermoAceite{}
	if err := dao.db.SelectContext(ctx, &termos, query, cpf); err != nil {
		return nil, fmt.Errorf("failed to list termos by CPF: %w", err)
	}
	return termos, nil
}
