package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"Studenten/internal/config"
)

func TestOpenCache_CreatesAndMigrates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cache", "scli.db")
	cache, done, err := OpenCache(&config.Config{ClientDBPath: p})
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer done()

	if err := cache.Put("http://h:1", 5, `"2"`, []byte("{}")); err != nil {
		t.Fatalf("Put after migrate: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("db file not created: %v", err)
	}
}

func TestOpenCache_EmptyPath(t *testing.T) {
	if _, _, err := OpenCache(&config.Config{}); err == nil {
		t.Fatalf("expected error for empty client db path")
	}
}
