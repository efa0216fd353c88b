package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"Studenten/internal/config"
)

// withTempConfig возвращает конфигурацию, у которой токен и база кэша лежат в temp,
// а запросы уходят на serverURL.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ServerURL:    serverURL,
		AuthSecret:   "test-secret",
		ClientDBPath: filepath.Join(dir, "db", "scli.db"),
		TokenFile:    filepath.Join(dir, "token"),
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
