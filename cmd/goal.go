package cmd

import (
	"context"
	"flag"
	"fmt"

	ensaios "github.com/clebitoo/controle-de-ensaios"
	"github.com/google/subcommands"
)

type goalCmd struct {
	set string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "show or set the daily revenue goal" }
func (*goalCmd) Usage() string {
	return `cde goal [-set <amount>]

  Without flags, prints the current daily goal.

Usage Examples:
$ cde goal -set 1500
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "New daily goal amount")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if c.set == "" {
		fmt.Printf("Daily goal: %s\n", book.DailyGoal)
		return subcommands.ExitSuccess
	}
	goal, err := ensaios.ParseMoney(c.set)
	if err != nil {
		return fail(err)
	}
	if err := book.SetDailyGoal(goal); err != nil {
		return fail(err)
	}
	if err := store.Save(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Daily goal set to %s\n", book.DailyGoal)
	return subcommands.ExitSuccess
}
