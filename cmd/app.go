// Package cmd implements the CLI application to manage the studio book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	ensaios "github.com/clebitoo/controle-de-ensaios"
	"github.com/google/subcommands"
)

// Commands lists every subcommand the cde binary registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&lsCmd{},
	&rmCmd{},
	&sellCmd{},
	&deliverCmd{},
	&photographerCmd{},
	&sellerCmd{},
	&goalCmd{},
	&progressCmd{},
	&rankingsCmd{},
	&summaryCmd{},
	&reportCmd{},
	&clearCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Path to the studio data directory (overrides ENSAIOS_DATA)")

// envConfig is the environment side of the configuration; the -data flag wins.
type envConfig struct {
	DataDir string `env:"ENSAIOS_DATA"`
}

// openStore resolves the data directory (flag, then environment, then the
// default) and returns the store rooted there.
func openStore() (ensaios.Store, error) {
	dir := *dataDir
	if dir == "" {
		var cfg envConfig
		if err := env.Parse(&cfg); err != nil {
			return nil, fmt.Errorf("parse env: %w", err)
		}
		dir = cfg.DataDir
	}
	if dir == "" {
		dir = ".ensaios"
	}
	return ensaios.NewDirStore(dir), nil
}

// loadBook opens the store and reads the whole book from it.
func loadBook() (*ensaios.Book, ensaios.Store, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	book, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load the studio book: %w", err)
	}
	return book, store, nil
}

// fail prints an error the way every command reports one.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if ensaios.IsValidation(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
