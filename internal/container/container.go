package container

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/saulo-duarte/eternal-quest/internal/config"
	"github.com/saulo-duarte/eternal-quest/internal/quest"
)

type Container struct {
	Config         config.Config
	QuestContainer *quest.QuestContainer
}

// New configures logging, connects the database when a DSN is set and builds
// the quest engine. The returned context carries a fresh session id for log
// correlation.
func New(ctx context.Context, cfg config.Config, logOut io.Writer) (*Container, context.Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, ctx, err
	}
	config.InitLogger(cfg.LogLevel, cfg.LogFormat, logOut)
	ctx = config.ContextWithSessionID(ctx, uuid.NewString())

	if cfg.UsesDatabase() {
		if err := config.Connect(ctx, cfg.DatabaseDSN, &quest.SaveSlot{}); err != nil {
			return nil, ctx, fmt.Errorf("failed to connect to DB: %w", err)
		}
	}

	return &Container{
		Config:         cfg,
		QuestContainer: quest.NewQuestContainer(config.DB, cfg.ReplayOnLoad),
	}, ctx, nil
}

func (c *Container) Close() error {
	if c.Config.UsesDatabase() {
		return config.Close()
	}
	return nil
}
