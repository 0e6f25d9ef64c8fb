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
	Register(&SnapshotCmd{})
}

// SnapshotCmd implements the snapshot command. It prints the raw collection
// in its durable encoding, including "[]" for an empty store.
type SnapshotCmd struct{}

func (c *SnapshotCmd) Name() string      { return "snapshot" }
func (c *SnapshotCmd) Aliases() []string { return []string{"dump"} }
func (c *SnapshotCmd) Synopsis() string  { return "Print the raw task collection as JSON" }
func (c *SnapshotCmd) Usage() string     { return "tasklite snapshot" }
func (c *SnapshotCmd) NeedsStore() bool  { return true }

func (c *SnapshotCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SnapshotCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: snapshot takes no arguments")
		return exitcode.UserError
	}

	enc, err := svc.Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	fmt.Fprint(out, enc)
	return exitcode.Success
}
