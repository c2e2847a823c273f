package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"messages-api/internal/domain"
	"messages-api/internal/repository"
)

type mockMessageServiceRepo struct {
	lastInserted domain.Message
	inserts      int
	insertErr    error
	listData     []domain.Message
	listErr      error
	lastID       string
}

func (m *mockMessageServiceRepo) FindAll(_ context.Context) ([]domain.Message, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listData, nil
}

func (m *mockMessageServiceRepo) FindByID(_ context.Context, id string) ([]domain.Message, error) {
	m.lastID = id
	if m.listErr != nil {
		return nil, m.listErr
	}
	return lo.Filter(m.listData, func(msg domain.Message, _ int) bool {
		return msg.ID != nil && *msg.ID == id
	}), nil
}

func (m *mockMessageServiceRepo) Insert(_ context.Context, message domain.Message) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserts++
	m.lastInserted = message
	return nil
}

type mockPublisher struct {
	published []domain.Message
	err       error
}

func (m *mockPublisher) PublishCreated(_ context.Context, msg domain.Message) error {
	m.published = append(m.published, msg)
	return m.err
}

func TestMessageServiceSave_GeneratesUUID(t *testing.T) {
	repo := &mockMessageServiceRepo{}
	svc := NewMessageService(repo, nil, zap.NewNop())

	saved, err := svc.Save(context.Background(), domain.Message{Text: "hi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastInserted.ID == nil {
		t.Fatalf("expected generated id")
	}
	if _, err := uuid.Parse(*repo.lastInserted.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", *repo.lastInserted.ID)
	}
	if saved.ID == nil || *saved.ID != *repo.lastInserted.ID {
		t.Fatalf("expected saved message to carry the generated id")
	}
}

func TestMessageServiceSave_PreservesExplicitID(t *testing.T) {
	repo := &mockMessageServiceRepo{}
	svc := NewMessageService(repo, nil, nil)

	if _, err := svc.Save(context.Background(), domain.Message{ID: lo.ToPtr("m1"), Text: "hola"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if *repo.lastInserted.ID != "m1" || repo.lastInserted.Text != "hola" {
		t.Fatalf("expected explicit id preserved, got %+v", repo.lastInserted)
	}
}

func TestMessageServiceSave_AcceptsEmptyText(t *testing.T) {
	repo := &mockMessageServiceRepo{}
	svc := NewMessageService(repo, nil, nil)

	if _, err := svc.Save(context.Background(), domain.Message{Text: ""}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.inserts != 1 {
		t.Fatalf("expected one insert, got %d", repo.inserts)
	}
}

func TestMessageServiceSave_StorageErrorNotRetried(t *testing.T) {
	repo := &mockMessageServiceRepo{insertErr: repository.ErrDuplicateID}
	pub := &mockPublisher{}
	svc := NewMessageService(repo, pub, nil)

	_, err := svc.Save(context.Background(), domain.Message{ID: lo.ToPtr("dup"), Text: "x"})
	if !errors.Is(err, repository.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("expected no event for failed insert")
	}
}

func TestMessageServiceSave_PublishFailureDoesNotFail(t *testing.T) {
	repo := &mockMessageServiceRepo{}
	pub := &mockPublisher{err: errors.New("kafka down")}
	svc := NewMessageService(repo, pub, zap.NewNop())

	if _, err := svc.Save(context.Background(), domain.Message{Text: "hi"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(pub.published) != 1 || pub.published[0].Text != "hi" {
		t.Fatalf("expected one published event, got %+v", pub.published)
	}
}

func TestMessageServiceFind(t *testing.T) {
	repo := &mockMessageServiceRepo{
		listData: []domain.Message{
			{ID: lo.ToPtr("m2"), Text: "b"},
			{ID: lo.ToPtr("m1"), Text: "a"},
		},
	}
	svc := NewMessageService(repo, nil, nil)

	all, err := svc.FindMessages(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 || *all[0].ID != "m2" {
		t.Fatalf("expected storage order preserved, got %+v", all)
	}

	one, err := svc.FindMessageByID(context.Background(), "m1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastID != "m1" || len(one) != 1 {
		t.Fatalf("expected single match, got %+v", one)
	}

	none, err := svc.FindMessageByID(context.Background(), "nope")
	if err != nil || len(none) != 0 {
		t.Fatalf("expected empty result, got %+v / %v", none, err)
	}
}

func TestMessageServiceRoundTripWithMemoryRepository(t *testing.T) {
	svc := NewMessageService(repository.NewMemoryMessageRepository(), nil, nil)
	ctx := context.Background()

	saved, err := svc.Save(ctx, domain.Message{Text: "hi"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	found, err := svc.FindMessageByID(ctx, *saved.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 1 || found[0].Text != "hi" {
		t.Fatalf("expected round trip, got %+v", found)
	}
}

func TestMessageService_NotConfigured(t *testing.T) {
	var svc *MessageService
	if _, err := svc.Save(context.Background(), domain.Message{}); !errors.Is(err, ErrMessageServiceNotConfigured) {
		t.Fatalf("expected ErrMessageServiceNotConfigured, got %v", err)
	}

	svc = NewMessageService(nil, nil, nil)
	if _, err := svc.FindMessages(context.Background()); !errors.Is(err, ErrMessageServiceNotConfigured) {
		t.Fatalf("expected ErrMessageServiceNotConfigured, got %v", err)
	}
	if _, err := svc.FindMessageByID(context.Background(), "x"); !errors.Is(err, ErrMessageServiceNotConfigured) {
		t.Fatalf("expected ErrMessageServiceNotConfigured, got %v", err)
	}
}
