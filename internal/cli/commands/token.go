package commands

import (
	"context"
	"fmt"
	"strings"

	"Studenten/internal/auth"
	fsrepo "Studenten/internal/cli/repo/fs"
	"Studenten/internal/config"
)

type tokenCmd struct{}

func (tokenCmd) Name() string        { return "token" }
func (tokenCmd) Group() string       { return GroupSession }
func (tokenCmd) Description() string { return "Issue a development token and store it" }
func (tokenCmd) Usage() string       { return "token <subject> <role[,role...]>" }

func (tokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	var roles []string
	for _, r := range strings.Split(args[1], ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		return ErrUsage
	}
	tok, err := auth.NewToken(cfg.AuthSecret, args[0], roles, auth.DefaultTTL)
	if err != nil {
		return err
	}
	if err := (fsrepo.TokenFSStore{Path: cfg.TokenFile}).Save(tok); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintf(Out, "Token for %s (%s) saved to %s\n", args[0], strings.Join(roles, ","), cfg.TokenFile)
	return nil
}

func init() { RegisterCmd(tokenCmd{}) }
