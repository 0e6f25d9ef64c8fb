package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklite/internal/config"
	"tasklite/internal/exitcode"
	"tasklite/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasklite help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasklite                             List all tasks
  tasklite list [common flags]         List all tasks
  tasklite add [common flags] <title...>
  tasklite create [common flags] <title...>
  tasklite done [common flags] <id>
  tasklite complete [common flags] <id>
  tasklite snapshot [common flags]     Print the raw task collection as JSON
  tasklite dump [common flags]         Alias for snapshot
  tasklite serve [common flags]        Serve the task store over MCP stdio
  tasklite help
  tasklite version

Common flags:
  --config <dir>   Override config directory
  --store <file>   Override task file path
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
