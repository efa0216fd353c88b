package commands

import (
	"context"
	"fmt"

	"Studenten/internal/config"
)

type updateCmd struct{}

func (updateCmd) Name() string  { return "update" }
func (updateCmd) Group() string { return GroupWrite }
func (updateCmd) Description() string {
	return "Update a student from a JSON file; version defaults to the cached ETag"
}
func (updateCmd) Usage() string { return "update <id> <file.json> [version]" }

func (updateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	doc, err := readDocument(args[1])
	if err != nil {
		return err
	}
	var version string
	if len(args) == 3 {
		version = args[2]
	}
	sc, done, err := openClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	etag, err := sc.Update(ctx, id, doc, version)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated %d, new etag: %s\n", id, etag)
	return nil
}

func init() { RegisterCmd(updateCmd{}) }
