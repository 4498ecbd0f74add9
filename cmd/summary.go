package cmd

import (
	"context"
	"flag"

	ensaios "github.com/clebitoo/controle-de-ensaios"
	"github.com/clebitoo/controle-de-ensaios/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "show the day's sessions, outcomes and revenue at a glance"
}
func (*summaryCmd) Usage() string {
	return `cde summary
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := loadBook()
	if err != nil {
		return fail(err)
	}
	review := ensaios.NewReview(book, ensaios.Today())
	printMarkdown(renderer.SummaryMarkdown(review))
	return subcommands.ExitSuccess
}
