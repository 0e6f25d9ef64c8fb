package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"tasklite/internal/config"
	"tasklite/internal/exitcode"
	"tasklite/internal/output"
	"tasklite/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "tasklite done <id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		fmt.Fprintf(errOut, "error: invalid task id: %s\n", args[0])
		return exitcode.UserError
	}

	res, err := svc.CompleteTask(ctx, id)
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(errOut, "error: %s\n", nf.Error())
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	if !cfg.Quiet {
		if res.AlreadyCompleted {
			fmt.Fprintln(out, output.AlreadyCompletedMessage(res.Task))
		} else {
			fmt.Fprintln(out, output.CompletedMessage(res.Task))
		}
	}
	return exitcode.Success
}
