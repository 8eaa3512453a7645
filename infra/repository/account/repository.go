package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/finance/infra/repository"
	domainaccount "github.com/amirasaad/finance/pkg/domain/account"
	"github.com/amirasaad/finance/pkg/dto"
	"github.com/amirasaad/finance/pkg/mapper"
	repo "github.com/amirasaad/finance/pkg/repository/account"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The camelCase columns are quoted so postgres keeps their case.
const createTableSQL = `CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	saldo %s,
	"isDefault" INTEGER DEFAULT 0,
	"createdAt" TEXT NOT NULL
)`

// SQLRepository stores accounts in the accounts table. The table keeps only
// the coarse dto.Kind, so reads come back through the lossy mapper and there
// is no active flag: FindActive and CountActive are aliases of FindAll and
// Count.
type SQLRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ repo.Repository = (*SQLRepository)(nil)

// NewSQL creates the accounts table if it does not exist and returns the repository.
func NewSQL(ctx context.Context, db *gorm.DB, logger *slog.Logger) (*SQLRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	// postgres REAL is single precision, sqlite REAL is already a double.
	saldoType := "REAL"
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		saldoType = "DOUBLE PRECISION"
	}
	if err := db.WithContext(ctx).Exec(fmt.Sprintf(createTableSQL, saldoType)).Error; err != nil {
		return nil, fmt.Errorf("create accounts table: %w", err)
	}
	return &SQLRepository{db: db, logger: logger.With("repo", "account")}, nil
}

// Save upserts the account in a single statement. createdAt is written on
// insert only.
func (r *SQLRepository) Save(ctx context.Context, a *domainaccount.Account) (*domainaccount.Account, error) {
	m := modelFromDTO(mapper.AccountToDTO(a))
	err := repository.WrapError(func() error {
		return r.db.WithContext(
			ctx,
		).Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "type", "saldo", "isDefault"}),
			},
		).Create(&m).Error
	})
	if err != nil {
		r.logger.Error("Save failed", "id", a.ID(), "error", err)
		return nil, err
	}
	return a, nil
}

// FindByID returns nil when no row has id.
func (r *SQLRepository) FindByID(ctx context.Context, id string) (*domainaccount.Account, error) {
	accounts, err := r.find(ctx, r.db.WithContext(ctx).Where("id = ?", id).Limit(1))
	if err != nil || len(accounts) == 0 {
		return nil, err
	}
	return accounts[0], nil
}

// FindAll implements account.Repository.
func (r *SQLRepository) FindAll(ctx context.Context) ([]*domainaccount.Account, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

// FindActive implements account.Repository.
func (r *SQLRepository) FindActive(ctx context.Context) ([]*domainaccount.Account, error) {
	return r.FindAll(ctx)
}

// FindByType queries by the storage bucket of t. Every own-account type
// shares the propria bucket and comes back as corrente.
func (r *SQLRepository) FindByType(ctx context.Context, t domainaccount.Type) ([]*domainaccount.Account, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("type = ?", string(mapper.KindOf(t))))
}

// FindByName folds both sides with the database's LOWER so stored names and
// the query agree on case whatever the driver's folding rules are.
func (r *SQLRepository) FindByName(ctx context.Context, query string) ([]*domainaccount.Account, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.find(ctx, r.db.WithContext(ctx).Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, pattern))
}

// Delete implements account.Repository.
func (r *SQLRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Account{})
	if err := repository.MapGormErrorToDomain(res.Error); err != nil {
		r.logger.Error("Delete failed", "id", id, "error", err)
		return false, err
	}
	return res.RowsAffected > 0, nil
}

// Count implements account.Repository.
func (r *SQLRepository) Count(ctx context.Context) (int, error) {
	var n int64
	err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&Account{}).Count(&n).Error
	})
	if err != nil {
		r.logger.Error("Count failed", "error", err)
		return 0, err
	}
	return int(n), nil
}

// CountActive implements account.Repository.
func (r *SQLRepository) CountActive(ctx context.Context) (int, error) {
	return r.Count(ctx)
}

func (r *SQLRepository) find(ctx context.Context, q *gorm.DB) ([]*domainaccount.Account, error) {
	var rows []Account
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		r.logger.ErrorContext(ctx, "query failed", "error", err)
		return nil, repository.MapGormErrorToDomain(err)
	}
	dtos := make([]dto.Account, 0, len(rows))
	for _, m := range rows {
		dtos = append(dtos, m.toDTO())
	}
	return mapper.AccountsToDomain(dtos)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
