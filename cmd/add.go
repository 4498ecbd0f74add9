package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	photographer string
	model        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "book a new photo session for today" }
func (*addCmd) Usage() string {
	return `cde add -p <photographer> -m <model>

  Books a session shot today by a rostered photographer. The session starts
  pending until a sale outcome is recorded with 'cde sell'.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.photographer, "p", "", "Photographer name (must be on the roster)")
	f.StringVar(&c.model, "m", "", "Model name")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := loadBook()
	if err != nil {
		return fail(err)
	}
	session, err := book.AddSession(c.photographer, c.model, time.Now())
	if err != nil {
		return fail(err)
	}
	if err := store.Save(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Booked session %s: %s / %s on %s\n", session.ID, session.Photographer, session.Model, session.Date)
	return subcommands.ExitSuccess
}
