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

type progressCmd struct {
	watch int
}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "show today's progress toward the daily goal" }
func (*progressCmd) Usage() string {
	return `cde progress [-w n]

  Shows today's revenue against the daily goal, the per-seller and
  per-photographer splits, and the suggested value per pending folder.
`
}

func (c *progressCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *progressCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for {
		book, _, err := loadBook()
		if err != nil {
			return fail(err)
		}
		review := ensaios.NewReview(book, ensaios.Today())
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		printMarkdown(renderer.GoalsMarkdown(review))

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
