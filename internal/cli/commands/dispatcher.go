package commands

import (
	"Studenten/internal/cli/api"
	"Studenten/internal/cli/service"
	"Studenten/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Exit codes of scli.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitRejected = 3 // сервер ответил ошибкой 4xx/5xx
)

// Dispatch runs the command named by args[0] and returns the process exit code.
// "help", "-h" and "--help" print the global or per-command help.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	switch args[0] {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprint(Out, FormatCommandUsage(c))
		return ExitUsage
	}

	fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
	if hint := hintFor(err); hint != "" {
		fmt.Fprintf(Out, "hint: %s\n", hint)
	}
	var se *api.StatusError
	if errors.As(err, &se) {
		return ExitRejected
	}
	return ExitFailure
}

func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	if c, ok := Get(args[0]); ok {
		fmt.Fprint(Out, FormatCommandUsage(c))
		return ExitOK
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return ExitUsage
}

// hintFor подсказывает следующий шаг для типичных отказов сервера.
func hintFor(err error) string {
	if errors.Is(err, service.ErrNoVersion) {
		return "run `scli get <id>` to cache the current ETag"
	}
	var se *api.StatusError
	if !errors.As(err, &se) {
		return ""
	}
	switch se.Code {
	case http.StatusUnauthorized:
		return "no valid token: run `scli token <subject> <role>`"
	case http.StatusForbidden:
		return "the stored token lacks the required role"
	case http.StatusPreconditionFailed:
		return "the version is outdated: run `scli get <id>` and retry the update"
	case http.StatusNotFound:
		return "no student matches the id or the search criteria"
	}
	return ""
}
