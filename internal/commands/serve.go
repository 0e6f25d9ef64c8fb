package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tasklite/internal/config"
	"tasklite/internal/exitcode"
	"tasklite/internal/mcpserver"
	"tasklite/internal/service"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command: an MCP server over stdio exposing
// the task store to a connected agent.
type ServeCmd struct{}

func (c *ServeCmd) Name() string      { return "serve" }
func (c *ServeCmd) Aliases() []string { return nil }
func (c *ServeCmd) Synopsis() string  { return "Serve the task store over MCP stdio" }
func (c *ServeCmd) Usage() string     { return "tasklite serve" }
func (c *ServeCmd) NeedsStore() bool  { return true }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: serve takes no arguments")
		return exitcode.UserError
	}

	s := mcpserver.New(svc)
	// The MCP protocol owns stdout while serving; out/errOut are for the
	// CLI surface only.
	if err := mcpserver.Serve(ctx, s, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		fmt.Fprintf(errOut, "error: mcp server: %v\n", err)
		return exitcode.StoreError
	}
	return exitcode.Success
}
