package cmd

import (
	"context"
	"flag"

	"github.com/clebitoo/controle-de-ensaios/renderer"
	"github.com/google/subcommands"
)

type lsCmd struct{}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list every session with its sale outcome" }
func (*lsCmd) Usage() string {
	return `cde ls

  Lists all booked sessions with their sale outcome and delivery status.
`
}

func (*lsCmd) SetFlags(*flag.FlagSet) {}

func (*lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := loadBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SessionsMarkdown(book))
	return subcommands.ExitSuccess
}
