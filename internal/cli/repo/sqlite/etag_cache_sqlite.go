package sqlite

import (
	"Studenten/internal/cli/repo"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ETagCacheSQLite — локальный кэш ETag (SQLite).
type ETagCacheSQLite struct {
	db *sql.DB
}

var _ repo.ETagCache = (*ETagCacheSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД кэша по указанному пути.
func Open(path string) (*ETagCacheSQLite, error) {
	if path == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &ETagCacheSQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (c *ETagCacheSQLite) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц/индексов.
func (c *ETagCacheSQLite) Migrate() error {
	_, err := c.db.Exec(initialDDL())
	return err
}

// Get возвращает закэшированный ответ или nil, если записи нет.
func (c *ETagCacheSQLite) Get(baseURL string, id int64) (*repo.CachedStudent, error) {
	var cs repo.CachedStudent
	err := c.db.QueryRow(`SELECT etag, body, updated_at FROM etags WHERE base_url = ? AND student_id = ?`, baseURL, id).
		Scan(&cs.ETag, &cs.Body, &cs.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &cs, nil
}

// Put сохраняет ETag и тело ответа, перезаписывая прежнее значение.
func (c *ETagCacheSQLite) Put(baseURL string, id int64, etag string, body []byte) error {
	_, err := c.db.Exec(`INSERT INTO etags(base_url, student_id, etag, body, updated_at)
        VALUES(?, ?, ?, ?, ?)
        ON CONFLICT(base_url, student_id) DO UPDATE SET
          etag = excluded.etag,
          body = excluded.body,
          updated_at = excluded.updated_at`,
		baseURL, id, etag, body, time.Now().Unix(),
	)
	return err
}

// Delete удаляет запись; отсутствие записи ошибкой не считается.
func (c *ETagCacheSQLite) Delete(baseURL string, id int64) error {
	_, err := c.db.Exec(`DELETE FROM etags WHERE base_url = ? AND student_id = ?`, baseURL, id)
	return err
}
