package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "wipe all sessions, sales, rosters and the goal" }
func (*clearCmd) Usage() string {
	return `cde clear -f

  Deletes everything in the data directory. The default rosters are reseeded
  on the next command. Refuses to run without -f.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the wipe")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Println("This deletes every session, sale, roster and the daily goal. Re-run with -f to confirm.")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Clear(); err != nil {
		return fail(err)
	}
	fmt.Println("All data cleared.")
	return subcommands.ExitSuccess
}
