//go:build integration

package diary_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgres "github.com/heartmarshall/moodbook-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodbook-backend/internal/adapter/postgres/diary"
	"github.com/heartmarshall/moodbook-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

func TestRepo_Integration_Lifecycle(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := diary.New(pool)
	ctx := context.Background()
	userID := testhelper.NewUserID()

	first, err := repo.Create(ctx, userID, "2025-03-01", domain.DiaryFields{Title: "a", EmotionMarker: "😢"})
	require.NoError(t, err)
	assert.Equal(t, domain.EmotionSad, first.EmotionCategory)

	_, err = repo.Create(ctx, userID, "2025-03-02", domain.DiaryFields{Title: "b", EmotionMarker: "😊"})
	require.NoError(t, err)

	// Same date again: new id, same slot.
	second, err := repo.Create(ctx, userID, "2025-03-01", domain.DiaryFields{Title: "c", EmotionMarker: "🥰"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	all, err := repo.ListAll(ctx, userID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2025-03-01", all[0].Date)
	assert.Equal(t, "c", all[0].Title)

	updated, err := repo.Update(ctx, userID, second.ID, "2025-03-01", domain.DiaryFields{Title: "d", EmotionMarker: "😰"})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.ID)
	assert.Equal(t, domain.EmotionAnxious, updated.EmotionCategory)

	_, err = repo.Update(ctx, userID, first.ID, "2025-03-01", domain.DiaryFields{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	marks, err := repo.ListByMonth(ctx, userID, "2025-03")
	require.NoError(t, err)
	require.Len(t, marks, 2)
	assert.Equal(t, "😰", marks[0].EmotionMarker)

	recent, err := repo.ListRange(ctx, userID, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-03-02", recent[0].Date)

	require.NoError(t, repo.Delete(ctx, userID, uuid.Nil, "2025-03-02"))
	require.NoError(t, repo.Delete(ctx, userID, uuid.Nil, "2025-03-02"))

	_, err = repo.GetByDate(ctx, userID, "2025-03-02")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ids, err := repo.ListUserIDs(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.Contains(t, ids, userID)
}

func TestRepo_Integration_RollbackInTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := diary.New(pool)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()
	userID := testhelper.NewUserID()

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, userID, "2025-04-01", domain.DiaryFields{EmotionMarker: "😊"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	all, err := repo.ListAll(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, all)
}
