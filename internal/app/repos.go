package app

import (
	"fmt"
	"strings"

	"github.com/yungbote/edubot-backend/internal/db"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
	"github.com/yungbote/edubot-backend/internal/repos"
)

type Repos struct {
	Topics repos.TopicRegistry
}

// wireRepos returns the db service as well when the topic store is persistent.
func wireRepos(log *logger.Logger, cfg Config) (Repos, *db.Service, error) {
	log.Info("Wiring repos...")

	store := strings.ToLower(strings.TrimSpace(cfg.TopicStore))
	if store == "" || store == TopicStoreMemory {
		return Repos{Topics: repos.NewMemoryTopicRegistry(log)}, nil, nil
	}

	driver := db.DriverSQLite
	if store == TopicStorePostgres {
		driver = db.DriverPostgres
	}
	svc, err := db.Open(log, db.Config{
		Driver:      driver,
		PostgresDSN: cfg.PostgresDSN,
		SQLitePath:  cfg.SQLitePath,
	})
	if err != nil {
		return Repos{}, nil, fmt.Errorf("open %s: %w", store, err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		_ = svc.Close()
		return Repos{}, nil, fmt.Errorf("%s automigrate: %w", store, err)
	}
	return Repos{Topics: repos.NewGormTopicRegistry(svc.DB(), log)}, svc, nil
}
