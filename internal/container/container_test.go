package container_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/eternal-quest/internal/config"
	"github.com/saulo-duarte/eternal-quest/internal/container"
	"github.com/stretchr/testify/require"
)

func TestNew_FileBacked(t *testing.T) {
	cfg := config.Default()
	cfg.SaveFile = filepath.Join(t.TempDir(), "goals.txt")

	ctn, ctx, err := container.New(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	defer ctn.Close()

	svc := ctn.QuestContainer.Service
	svc.SeedExamples(ctx)
	require.NoError(t, svc.Save(ctx, cfg.Location()))

	loaded, err := ctn.QuestContainer.Repo.Load(ctx, cfg.Location())
	require.NoError(t, err)
	require.Len(t, loaded.Goals, 3)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "xml"

	_, _, err := container.New(context.Background(), cfg, io.Discard)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
