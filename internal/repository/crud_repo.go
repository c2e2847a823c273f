package repository

import (
	"context"

	"messages-api/internal/domain"
)

// CrudRepository es la abstracción genérica de lectura/creación por id.
// FindByID devuelve nil cuando no existe; Save crea o sobrescribe.
type CrudRepository[T any, ID comparable] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id ID) (*T, error)
	Save(ctx context.Context, entity T) error
}

// CrudMessageRepository adapta un CrudRepository de mensajes al contrato MessageRepository.
type CrudMessageRepository struct {
	crud CrudRepository[domain.Message, string]
}

func NewCrudMessageRepository(crud CrudRepository[domain.Message, string]) *CrudMessageRepository {
	return &CrudMessageRepository{crud: crud}
}

// NewMemoryMessageRepository arma el backend en memoria sobre MemoryCrudRepository.
func NewMemoryMessageRepository() *CrudMessageRepository {
	return NewCrudMessageRepository(NewMemoryCrudRepository[domain.Message, string](messageID))
}

func (r *CrudMessageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	messages, err := r.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

func (r *CrudMessageRepository) FindByID(ctx context.Context, id string) ([]domain.Message, error) {
	msg, err := r.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return []domain.Message{}, nil
	}
	return []domain.Message{*msg}, nil
}

func (r *CrudMessageRepository) Insert(ctx context.Context, message domain.Message) error {
	if message.ID == nil {
		return ErrMissingID
	}
	return r.crud.Save(ctx, message)
}

func messageID(m domain.Message) string {
	if m.ID == nil {
		return ""
	}
	return *m.ID
}
