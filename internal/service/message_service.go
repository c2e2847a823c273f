package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"messages-api/internal/domain"
	"messages-api/internal/events"
	"messages-api/internal/repository"
)

// MessageService encapsula la lectura y el guardado de mensajes.
// Cada llamada vuelve a leer el almacenamiento; no hay caché.
type MessageService struct {
	repo      repository.MessageRepository
	publisher events.Publisher
	logger    *zap.Logger
}

var ErrMessageServiceNotConfigured = errors.New("message service not configured")

func NewMessageService(repo repository.MessageRepository, publisher events.Publisher, logger *zap.Logger) *MessageService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{repo: repo, publisher: publisher, logger: logger}
}

// FindMessages devuelve todos los mensajes en el orden del almacenamiento.
func (s *MessageService) FindMessages(ctx context.Context) ([]domain.Message, error) {
	if s == nil || s.repo == nil {
		return nil, ErrMessageServiceNotConfigured
	}
	return s.repo.FindAll(ctx)
}

// FindMessageByID devuelve una lista con 0 o 1 mensajes.
func (s *MessageService) FindMessageByID(ctx context.Context, id string) ([]domain.Message, error) {
	if s == nil || s.repo == nil {
		return nil, ErrMessageServiceNotConfigured
	}
	return s.repo.FindByID(ctx, id)
}

// Save persiste el mensaje generando un UUID si no trae id.
// No verifica colisiones: un id repetido es un error del almacenamiento.
func (s *MessageService) Save(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if s == nil || s.repo == nil {
		return domain.Message{}, ErrMessageServiceNotConfigured
	}
	if msg.ID == nil {
		id := uuid.NewString()
		msg.ID = &id
	}

	if err := s.repo.Insert(ctx, msg); err != nil {
		return domain.Message{}, err
	}

	if err := s.publisher.PublishCreated(ctx, msg); err != nil {
		s.logger.Warn("publish message created failed",
			zap.String("message_id", *msg.ID),
			zap.Error(err),
		)
	}
	return msg, nil
}
