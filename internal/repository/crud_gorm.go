package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormCrudRepository implementa CrudRepository con gorm; la tabla sale del tipo T.
type GormCrudRepository[T any, ID comparable] struct {
	db       *gorm.DB
	idColumn string
}

func NewGormCrudRepository[T any, ID comparable](db *gorm.DB, idColumn string) *GormCrudRepository[T, ID] {
	if idColumn == "" {
		idColumn = "id"
	}
	return &GormCrudRepository[T, ID]{db: db, idColumn: idColumn}
}

func (r *GormCrudRepository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// FindByID usa Find con Limit para no tratar la ausencia como error.
func (r *GormCrudRepository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	var out []T
	err := r.db.WithContext(ctx).
		Where(r.idColumn+" = ?", id).
		Limit(1).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

// Save hace upsert: actualiza por clave primaria y crea si no había fila.
func (r *GormCrudRepository[T, ID]) Save(ctx context.Context, entity T) error {
	return r.db.WithContext(ctx).Save(&entity).Error
}
