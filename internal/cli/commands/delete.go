package commands

import (
	"context"
	"fmt"

	"Studenten/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Group() string       { return GroupWrite }
func (deleteCmd) Description() string { return "Delete a student with its name and photos" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
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

	if err := sc.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %d\n", id)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
