package cmd

import (
	"context"
	"flag"

	ensaios "github.com/clebitoo/controle-de-ensaios"
	"github.com/clebitoo/controle-de-ensaios/renderer"
	"github.com/google/subcommands"
)

type rankingsCmd struct{}

func (*rankingsCmd) Name() string     { return "rankings" }
func (*rankingsCmd) Synopsis() string { return "show today's photographer and seller rankings" }
func (*rankingsCmd) Usage() string {
	return `cde rankings

  Ranks photographers by folders and revenue, sellers by sale count and
  revenue, and lists the top 3 sales of the day.
`
}

func (c *rankingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *rankingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := loadBook()
	if err != nil {
		return fail(err)
	}
	review := ensaios.NewReview(book, ensaios.Today())
	printMarkdown(renderer.RankingsMarkdown(review))
	return subcommands.ExitSuccess
}
