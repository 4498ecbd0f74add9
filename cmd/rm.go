package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a booked session" }
func (*rmCmd) Usage() string {
	return `cde rm -id <session>

  Removes a session from the book. A sale already recorded for it is kept.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Session identifier (see 'cde ls')")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.DeleteSession(c.id); err != nil {
		return fail(err)
	}
	if err := store.Save(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed session %s\n", c.id)
	return subcommands.ExitSuccess
}
