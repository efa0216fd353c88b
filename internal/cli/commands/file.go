package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"Studenten/internal/config"
)

type fileCmd struct{}

func (fileCmd) Name() string        { return "file" }
func (fileCmd) Group() string       { return GroupRead }
func (fileCmd) Description() string { return "Download the binary file of a student" }
func (fileCmd) Usage() string       { return "file <id> <out|dir>" }

func (fileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	sc, done, err := openClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	data, name, err := sc.File(ctx, id)
	if err != nil {
		return err
	}
	out := args[1]
	// каталог: сохраняем под именем с сервера
	if st, err := os.Stat(out); err == nil && st.IsDir() && name != "" {
		out = filepath.Join(out, filepath.Base(name))
	}
	if err := os.WriteFile(out, data, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Saved %d bytes to %s\n", len(data), out)
	return nil
}

func init() { RegisterCmd(fileCmd{}) }
