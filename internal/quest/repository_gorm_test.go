package quest_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/eternal-quest/internal/codec"
	"github.com/saulo-duarte/eternal-quest/internal/goal"
	"github.com/saulo-duarte/eternal-quest/internal/quest"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("QUEST_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("QUEST_TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&quest.SaveSlot{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGormRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := quest.NewGormRepository(db)
	slot := "test-" + uuid.NewString()
	t.Cleanup(func() { db.Delete(&quest.SaveSlot{}, "name = ?", slot) })

	_, err := repo.Load(ctx, slot)
	require.ErrorIs(t, err, quest.ErrNotFound)

	first := codec.Snapshot{
		HasPlayer: true,
		Score:     150,
		Goals: []goal.Goal{
			goal.RestoreChecklist("Temple visits", "Go to the temple", 50, 10, 500, 3),
		},
	}
	require.NoError(t, repo.Save(ctx, slot, first))

	second := codec.Snapshot{
		HasPlayer: true,
		Score:     1150,
		Goals: []goal.Goal{
			goal.RestoreSimple("Run a marathon", "Complete a full marathon", 1000, true),
			goal.RestoreChecklist("Temple visits", "Go to the temple", 50, 10, 500, 3),
		},
	}
	require.NoError(t, repo.Save(ctx, slot, second))

	var count int64
	require.NoError(t, db.Model(&quest.SaveSlot{}).Where("name = ?", slot).Count(&count).Error)
	require.EqualValues(t, 1, count)

	loaded, err := repo.Load(ctx, slot)
	require.NoError(t, err)
	require.Equal(t, second, loaded)
}
