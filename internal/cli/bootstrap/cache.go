package bootstrap

import (
	"fmt"

	"Studenten/internal/cli/repo"
	reposqlite "Studenten/internal/cli/repo/sqlite"
	"Studenten/internal/config"
)

// OpenCache открывает локальный кэш ETag по пути из конфигурации,
// выполняет миграции и возвращает (cache, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenCache(cfg *config.Config) (repo.ETagCache, func() error, error) {
	c, err := reposqlite.Open(cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open client db: %w", err)
	}
	if err := c.Migrate(); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrate client db: %w", err)
	}
	return c, c.Close, nil
}
