package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"Studenten/internal/cli/api"
	"Studenten/internal/cli/bootstrap"
	fsrepo "Studenten/internal/cli/repo/fs"
	"Studenten/internal/cli/service"
	"Studenten/internal/config"
)

// openClient builds a student client with the stored token (if any) and the local ETag cache.
// The returned cleanup closes the cache.
func openClient(cfg *config.Config) (*service.StudentClient, func() error, error) {
	// без токена запросы уходят анонимно: чтение разрешено всем
	token, _ := fsrepo.TokenFSStore{Path: cfg.TokenFile}.Load()
	cache, done, err := bootstrap.OpenCache(cfg)
	if err != nil {
		return nil, nil, err
	}
	return service.NewStudentClient(api.NewClient(cfg.ServerURL, token), cache), done, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// readDocument reads a JSON document from a file; "-" means stdin.
func readDocument(path string) (json.RawMessage, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("%s: not a valid JSON document", path)
	}
	return json.RawMessage(b), nil
}

// printJSON prints a JSON body indented; anything else is printed as is.
func printJSON(body []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Fprintln(Out, string(body))
		return
	}
	fmt.Fprintln(Out, out.String())
}
