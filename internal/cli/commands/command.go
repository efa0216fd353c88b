package commands

import (
	"Studenten/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command groups, in the order they appear in help.
const (
	GroupSession = "session"
	GroupRead    = "read"
	GroupWrite   = "write"
)

var groupTitles = []struct{ group, title string }{
	{GroupSession, "Session:"},
	{GroupRead, "Read (no token needed):"},
	{GroupWrite, "Write (token with role admin or user; delete needs admin):"},
}

// Command is one scli subcommand working against the student REST API.
type Command interface {
	// Name is the word typed after scli, e.g. "get".
	Name() string
	// Group places the command in a help section.
	Group() string
	Description() string
	// Usage is the argument synopsis, e.g. "get <id> [photos]".
	Usage() string
	// Run gets the arguments after the command name.
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry from an init(). Names are case-insensitive;
// registering the same name twice replaces the earlier command.
func RegisterCmd(cmd Command) {
	registry[strings.ToLower(cmd.Name())] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// List returns the commands of a group sorted by name; an empty group means all commands.
func List(group string) []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		if group == "" || c.Group() == group {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds the help text: commands by group, then the settings scli reads.
func FormatGlobalUsage() string {
	lines := []string{
		"scli - client for the student REST API",
		"",
		"Usage:",
		"  scli [--base-url <host:port>] [--https] [--token-file <path>] [--client-db <path>] <command> [args]",
		"  scli help <command>",
	}
	listed := 0
	for _, g := range groupTitles {
		cmds := List(g.group)
		if len(cmds) == 0 {
			continue
		}
		lines = append(lines, "", g.title)
		for _, c := range cmds {
			lines = append(lines, fmt.Sprintf("  %-36s %s", c.Usage(), c.Description()))
		}
		listed += len(cmds)
	}
	if listed < len(registry) {
		lines = append(lines, "", "Other:")
		for _, c := range List("") {
			if !knownGroup(c.Group()) {
				lines = append(lines, fmt.Sprintf("  %-36s %s", c.Usage(), c.Description()))
			}
		}
	}
	lines = append(lines,
		"",
		"Environment:",
		"  BASE_URL, ENABLE_HTTPS   server address",
		"  AUTH_SECRET              secret used by `token` to sign development tokens",
		"  TOKEN_FILE               bearer token file (default ~/.scli_token)",
		"  CLIENT_DB_PATH           SQLite ETag cache (default ~/scli.db)",
	)
	return strings.Join(lines, "\n") + "\n"
}

// FormatCommandUsage is the help of a single command.
func FormatCommandUsage(c Command) string {
	return fmt.Sprintf("Usage: scli %s\n  %s\n", c.Usage(), c.Description())
}

func knownGroup(g string) bool {
	for _, t := range groupTitles {
		if t.group == g {
			return true
		}
	}
	return false
}
