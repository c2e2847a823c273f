package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"messages-api/internal/domain"
)

var (
	// ErrMissingID se devuelve al insertar un mensaje sin id asignado.
	ErrMissingID = errors.New("message id is required for insert")
	// ErrDuplicateID se devuelve cuando el backend detecta un id ya existente.
	ErrDuplicateID = errors.New("message id already exists")
	// ErrInconsistentIndex indica un id en la lista de orden sin texto asociado.
	ErrInconsistentIndex = errors.New("message id indexed without text")
)

// MessageRepository define el contrato de persistencia para mensajes.
// FindAll respeta el orden del almacenamiento y FindByID devuelve 0 o 1 elementos.
type MessageRepository interface {
	FindAll(ctx context.Context) ([]domain.Message, error)
	FindByID(ctx context.Context, id string) ([]domain.Message, error)
	Insert(ctx context.Context, message domain.Message) error
}

// PgMessageRepository implementa MessageRepository con SQL parametrizado sobre pgxpool.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	const query = `SELECT id, text FROM messages`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

func (r *PgMessageRepository) FindByID(ctx context.Context, id string) ([]domain.Message, error) {
	const query = `SELECT id, text FROM messages WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	return scanMessages(rows)
}

func (r *PgMessageRepository) Insert(ctx context.Context, message domain.Message) error {
	const query = `INSERT INTO messages (id, text) VALUES ($1, $2)`

	if message.ID == nil {
		return ErrMissingID
	}
	_, err := r.pool.Exec(ctx, query, *message.ID, message.Text)
	return err
}

func scanMessages(rows pgx.Rows) ([]domain.Message, error) {
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var id, text string
		if err := rows.Scan(&id, &text); err != nil {
			return nil, err
		}
		messages = append(messages, domain.Message{ID: &id, Text: text})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
