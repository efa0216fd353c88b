package commands

import (
	"context"
	"fmt"

	"Studenten/internal/config"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Group() string       { return GroupRead }
func (getCmd) Description() string { return "Show a student by id (revalidated with the cached ETag)" }
func (getCmd) Usage() string       { return "get <id> [photos]" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "photos") {
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

	f, err := sc.Get(ctx, id, len(args) == 2)
	if err != nil {
		return err
	}
	source := "server"
	if f.FromCache {
		source = "cache"
	}
	fmt.Fprintf(Out, "etag: %s (%s)\n", f.ETag, source)
	printJSON(f.Body)
	return nil
}

func init() { RegisterCmd(getCmd{}) }
