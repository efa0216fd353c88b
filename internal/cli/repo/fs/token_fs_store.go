package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"Studenten/internal/cli/repo"
)

// TokenFSStore — файловое хранилище bearer-токена для CLI.
type TokenFSStore struct {
	Path string
}

var _ repo.TokenStore = TokenFSStore{}

// Save сохраняет токен в файл, создавая каталог при необходимости.
func (s TokenFSStore) Save(token string) error {
	if s.Path == "" {
		return errors.New("empty token file path")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s TokenFSStore) Load() (string, error) {
	if s.Path == "" {
		return "", errors.New("empty token file path")
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	tok := strings.TrimRight(string(b), " \t\r\n")
	if tok == "" {
		return "", errors.New("empty token file")
	}
	return tok, nil
}
