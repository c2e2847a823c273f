package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"messages-api/internal/domain"
	"messages-api/internal/service"
)

// MessageHandler expone los mensajes y sus vistas derivadas.
type MessageHandler struct {
	logger  *zap.Logger
	msgServ *service.MessageService
}

// NewMessageHandler crea una instancia de MessageHandler con dependencias necesarias.
func NewMessageHandler(logger *zap.Logger, msgServ *service.MessageService) *MessageHandler {
	return &MessageHandler{
		logger:  logger,
		msgServ: msgServ,
	}
}

type createMessageRequest struct {
	ID   *string `json:"id"`
	Text *string `json:"text" binding:"required"`
}

type fieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// List maneja GET /.
func (h *MessageHandler) List(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, messages)
}

// GetByID maneja GET /:id. Un id inexistente devuelve [].
func (h *MessageHandler) GetByID(c *gin.Context) {
	messages, err := h.msgServ.FindMessageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "find message by id", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// FirstAndLast maneja GET /firstAndLast.
func (h *MessageHandler) FirstAndLast(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	out, err := service.FirstAndLast(messages)
	if err != nil {
		h.respondError(c, "first and last", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// FirstLongerThan10 maneja GET /firstMessageLongerThan10.
func (h *MessageHandler) FirstLongerThan10(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	out, err := service.FirstLongerThan(messages, service.LongMessageThreshold)
	if err != nil {
		h.respondError(c, "first message longer than 10", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// FirstLongerThan10OrDefault maneja GET /firstMessageLongerThan10OrNull.
func (h *MessageHandler) FirstLongerThan10OrDefault(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.FirstLongerThanOrDefault(messages, service.LongMessageThreshold))
}

// FilterLongerThan10 maneja GET /filterMessagesLongerThan10.
func (h *MessageHandler) FilterLongerThan10(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.FilterLongerThan(messages, service.LongMessageThreshold))
}

// SortByLastLetter maneja GET /sortByLastLetter.
func (h *MessageHandler) SortByLastLetter(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	out, err := service.SortByLastLetter(messages)
	if err != nil {
		h.respondError(c, "sort by last letter", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Groups maneja GET /groups.
func (h *MessageHandler) Groups(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.GroupByKeyword(messages))
}

// ToStrings maneja GET /transformMessagesToListOfStrings.
func (h *MessageHandler) ToStrings(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, service.ToStrings(messages))
}

// AverageLength maneja GET /averageMessageLength.
func (h *MessageHandler) AverageLength(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	avg, err := service.AverageLength(messages)
	if err != nil {
		h.respondError(c, "average message length", err)
		return
	}
	c.JSON(http.StatusOK, avg)
}

// Longest maneja GET /findTheLongestMessage.
func (h *MessageHandler) Longest(c *gin.Context) {
	messages, ok := h.loadMessages(c)
	if !ok {
		return
	}
	out, err := service.Longest(messages)
	if err != nil {
		h.respondError(c, "find the longest message", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Create maneja POST /. Responde 200 sin cuerpo.
func (h *MessageHandler) Create(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create message request", zap.Error(err))
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": toFieldErrors(verrs)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := h.msgServ.Save(c.Request.Context(), domain.Message{ID: req.ID, Text: *req.Text})
	if err != nil {
		h.logger.Error("create message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create message"})
		return
	}

	h.logger.Info("message created", zap.String("message_id", saved.IDString()))
	c.Status(http.StatusOK)
}

func (h *MessageHandler) loadMessages(c *gin.Context) ([]domain.Message, bool) {
	messages, err := h.msgServ.FindMessages(c.Request.Context())
	if err != nil {
		h.respondError(c, "find messages", err)
		return nil, false
	}
	return messages, true
}

func (h *MessageHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyCollection), errors.Is(err, domain.ErrNoMatch):
		h.logger.Warn(op+" failed", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrIndexOutOfRange):
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not " + op})
	}
}

func toFieldErrors(verrs validator.ValidationErrors) []fieldError {
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "is required"
		if fe.Tag() != "required" {
			msg = fmt.Sprintf("failed on %s", fe.Tag())
		}
		out = append(out, fieldError{Field: strings.ToLower(fe.Field()), Error: msg})
	}
	return out
}
