package repository

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"messages-api/internal/domain"
)

func msg(id, text string) domain.Message {
	return domain.Message{ID: lo.ToPtr(id), Text: text}
}

func Test_MemoryCrud_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemoryCrudRepository[domain.Message, string](messageID)

	req.NoError(repo.Save(ctx, msg("b", "second letter")))
	req.NoError(repo.Save(ctx, msg("a", "first letter")))
	req.NoError(repo.Save(ctx, msg("c", "third letter")))

	all, err := repo.FindAll(ctx)
	req.NoError(err)
	req.Equal([]string{"b", "a", "c"}, lo.Map(all, func(m domain.Message, _ int) string { return *m.ID }))
}

func Test_MemoryCrud_Save_Overwrites_In_Place(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemoryCrudRepository[domain.Message, string](messageID)

	req.NoError(repo.Save(ctx, msg("1", "old")))
	req.NoError(repo.Save(ctx, msg("2", "other")))
	req.NoError(repo.Save(ctx, msg("1", "new")))

	all, err := repo.FindAll(ctx)
	req.NoError(err)
	req.Len(all, 2)
	req.Equal("new", all[0].Text)

	found, err := repo.FindByID(ctx, "1")
	req.NoError(err)
	req.NotNil(found)
	req.Equal("new", found.Text)
}

func Test_MemoryCrud_FindByID_Missing_Returns_Nil(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryCrudRepository[domain.Message, string](messageID)

	found, err := repo.FindByID(context.Background(), "nope")
	req.NoError(err)
	req.Nil(found)
}

func Test_MemoryCrud_FindAll_Returns_Copy(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewMemoryCrudRepository[domain.Message, string](messageID)
	req.NoError(repo.Save(ctx, msg("1", "Hello")))

	all, err := repo.FindAll(ctx)
	req.NoError(err)
	all[0].Text = "Modified"

	found, err := repo.FindByID(ctx, "1")
	req.NoError(err)
	req.Equal("Hello", found.Text)
}
