package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// registroKV is the single table backing the Postgres engine.
type registroKV struct {
	Clave     string `gorm:"primaryKey;type:varchar(128)"`
	Valor     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

func (registroKV) TableName() string { return "almacen_kv" }

// Postgres stores each document as a bytea row, upserted on write.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres migrates the backing table and returns the engine.
func NewPostgres(db *gorm.DB) (*Postgres, error) {
	if err := db.AutoMigrate(&registroKV{}); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, clave string) ([]byte, error) {
	var reg registroKV
	err := p.db.WithContext(ctx).First(&reg, "clave = ?", clave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return reg.Valor, nil
}

func (p *Postgres) Set(ctx context.Context, clave string, valor []byte) error {
	reg := registroKV{Clave: clave, Valor: valor, UpdatedAt: time.Now()}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clave"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
		}).
		Create(&reg).Error
}

func (p *Postgres) Delete(ctx context.Context, clave string) error {
	return p.db.WithContext(ctx).Delete(&registroKV{}, "clave = ?", clave).Error
}

var _ Engine = (*Postgres)(nil)
