package account

import (
	"database/sql"

	"github.com/amirasaad/finance/pkg/dto"
)

// Account is a row of the accounts table.
type Account struct {
	ID        string          `gorm:"column:id;primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	Type      string          `gorm:"column:type;not null"`
	Saldo     sql.NullFloat64 `gorm:"column:saldo"`
	IsDefault int64           `gorm:"column:isDefault"`
	CreatedAt string          `gorm:"column:createdAt;not null;autoCreateTime:false"`
}

// TableName implements schema.Tabler.
func (Account) TableName() string {
	return "accounts"
}

func modelFromDTO(d dto.Account) Account {
	m := Account{
		ID:        d.ID,
		Name:      d.Name,
		Type:      string(d.Type),
		CreatedAt: d.CreatedAt,
	}
	if d.Saldo != nil {
		m.Saldo = sql.NullFloat64{Float64: *d.Saldo, Valid: true}
	}
	if d.IsDefault {
		m.IsDefault = 1
	}
	return m
}

func (m Account) toDTO() dto.Account {
	d := dto.Account{
		ID:        m.ID,
		Name:      m.Name,
		Type:      dto.Kind(m.Type),
		IsDefault: m.IsDefault != 0,
		CreatedAt: m.CreatedAt,
	}
	if m.Saldo.Valid {
		v := m.Saldo.Float64
		d.Saldo = &v
	}
	return d
}
