package commands

import (
	"context"
	"strings"

	"Studenten/internal/config"
)

type findCmd struct{}

func (findCmd) Name() string  { return "find" }
func (findCmd) Group() string { return GroupRead }
func (findCmd) Description() string {
	return "Search students; keys: last_name, matriculation_number, program, balance, birthday, page, size"
}
func (findCmd) Usage() string { return "find [key=value ...]" }

func (findCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	criteria := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return ErrUsage
		}
		criteria[k] = v
	}
	sc, done, err := openClient(cfg)
	if err != nil {
		return err
	}
	defer done()

	body, err := sc.Find(ctx, criteria)
	if err != nil {
		return err
	}
	printJSON(body)
	return nil
}

func init() { RegisterCmd(findCmd{}) }
