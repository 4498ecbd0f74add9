package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	ensaios "github.com/clebitoo/controle-de-ensaios"
	"github.com/clebitoo/controle-de-ensaios/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	final bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the shareable daily report" }
func (*reportCmd) Usage() string {
	return `cde report [-final]

  Prints the day's report as plain text, ready to paste into the studio's
  group chat. The default is the partial (mid-day) ranking; -final prints
  the end-of-day revenue report instead.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.final, "final", false, "Print the end-of-day report")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := loadBook()
	if err != nil {
		return fail(err)
	}
	now := time.Now()
	review := ensaios.NewReview(book, ensaios.DayOf(now))

	// The report is pasted elsewhere verbatim, so it bypasses the markdown
	// renderer.
	if c.final {
		fmt.Println(renderer.Final(review, now))
	} else {
		fmt.Println(renderer.Partial(review, now))
	}
	return subcommands.ExitSuccess
}
