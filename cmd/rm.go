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
func (*rmCmd) Synopsis() string { return "delete a transaction" }
func (*rmCmd) Usage() string {
	return `fin rm -id <id>

  Deletes the transaction with the given id. Deleting an unknown id is a no-op.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "ID of the transaction to delete.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		return fail(fmt.Errorf("the -id flag is required"))
	}
	store := OpenStore()
	store.Remove(p.id)
	fmt.Printf("Deleted transaction %s\n", p.id)
	return subcommands.ExitSuccess
}
