package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deliverCmd struct {
	id string
}

func (*deliverCmd) Name() string     { return "deliver" }
func (*deliverCmd) Synopsis() string { return "mark a sold session's photos as sent" }
func (*deliverCmd) Usage() string {
	return `cde deliver -id <session>

  Marks the photos of a sold (VD) session as sent to the client.

Usage Examples:
$ cde deliver -id 1756500000000
`
}

func (c *deliverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Session identifier (see 'cde ls')")
}

func (c *deliverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := loadBook()
	if err != nil {
		return fail(err)
	}
	if err := book.MarkDelivered(c.id); err != nil {
		return fail(err)
	}
	if err := store.Save(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Photos for session %s marked as sent.\n", c.id)
	fmt.Println("Upload them at https://wetransfer.com/ and share the link with the client.")
	return subcommands.ExitSuccess
}
