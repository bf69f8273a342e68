package quest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/eternal-quest/internal/codec"
	"github.com/saulo-duarte/eternal-quest/internal/goal"
	"github.com/saulo-duarte/eternal-quest/internal/quest"
	"github.com/stretchr/testify/require"
)

func TestFileRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := quest.NewFileRepository()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := repo.Load(ctx, filepath.Join(t.TempDir(), "goals.txt"))
		require.ErrorIs(t, err, quest.ErrNotFound)
	})

	t.Run("directory is not a save", func(t *testing.T) {
		t.Parallel()

		_, err := repo.Load(ctx, t.TempDir())
		require.Error(t, err)
		require.NotErrorIs(t, err, quest.ErrNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "goals.txt")
		snap := codec.Snapshot{
			HasPlayer: true,
			Score:     42,
			Goals: []goal.Goal{
				goal.RestoreEternal("Pray", "daily", 10, 4),
			},
		}
		require.NoError(t, repo.Save(ctx, path, snap))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

		loaded, err := repo.Load(ctx, path)
		require.NoError(t, err)
		require.Equal(t, snap, loaded)
	})
}
