package commands

import (
	"context"
	"fmt"

	"Studenten/internal/config"
)

type createCmd struct{}

func (createCmd) Name() string        { return "create" }
func (createCmd) Group() string       { return GroupWrite }
func (createCmd) Description() string { return "Create a student from a JSON file (- for stdin)" }
func (createCmd) Usage() string       { return "create <file.json>" }

func (createCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}
	sc, done, err := openClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	loc, err := sc.Create(ctx, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created: %s\n", loc)
	return nil
}

func init() { RegisterCmd(createCmd{}) }
