package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	ensaios "github.com/clebitoo/controle-de-ensaios"
	"github.com/google/subcommands"
)

// rosterCmd is the shared implementation behind the 'photographer' and
// 'seller' subcommands. With no flags it lists the roster.
type rosterCmd struct {
	name string
	pick func(*ensaios.Book) *ensaios.Roster

	add string
	rm  string
}

type photographerCmd struct{ rosterCmd }
type sellerCmd struct{ rosterCmd }

func (c *photographerCmd) SetFlags(f *flag.FlagSet) {
	c.name = "photographer"
	c.pick = func(b *ensaios.Book) *ensaios.Roster { return &b.Photographers }
	c.rosterCmd.SetFlags(f)
}

func (c *sellerCmd) SetFlags(f *flag.FlagSet) {
	c.name = "seller"
	c.pick = func(b *ensaios.Book) *ensaios.Roster { return &b.Sellers }
	c.rosterCmd.SetFlags(f)
}

func (*photographerCmd) Name() string     { return "photographer" }
func (*photographerCmd) Synopsis() string { return "list or edit the photographer roster" }
func (*photographerCmd) Usage() string {
	return `cde photographer [-add <name>] [-rm <name>]

  Without flags, lists the photographers. New sessions can only be booked for
  a photographer on this roster. Removing a name never touches past sessions.

Usage Examples:
$ cde photographer -add Marina
`
}

func (*sellerCmd) Name() string     { return "seller" }
func (*sellerCmd) Synopsis() string { return "list or edit the seller roster" }
func (*sellerCmd) Usage() string {
	return `cde seller [-add <name>] [-rm <name>]

  Without flags, lists the sellers. Seller totals and rankings cover the
  names on this roster. Removing a name never touches past sales.

Usage Examples:
$ cde seller -add Carla
`
}

func (c *rosterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name to add to the roster")
	f.StringVar(&c.rm, "rm", "", "Name to remove from the roster")
}

func (c *rosterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := loadBook()
	if err != nil {
		return fail(err)
	}
	roster := c.pick(book)

	if c.add == "" && c.rm == "" {
		fmt.Printf("%ss: %s\n", c.name, strings.Join(*roster, ", "))
		return subcommands.ExitSuccess
	}
	if c.add != "" {
		if err := roster.Add(c.add); err != nil {
			return fail(err)
		}
	}
	if c.rm != "" {
		if err := roster.Remove(c.rm); err != nil {
			return fail(err)
		}
	}
	if err := store.Save(book); err != nil {
		return fail(err)
	}
	fmt.Printf("%ss: %s\n", c.name, strings.Join(*roster, ", "))
	return subcommands.ExitSuccess
}
