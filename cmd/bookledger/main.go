/*Back-office ledger CLI*/
package main

import (
	"github.com/alecthomas/kong"
)

// cli commands / args available
var cli struct {
	Globals globals `embed:""`

	Init      initCmd      `cmd:"" help:"Create a fresh ledger file with the default category set."`
	Account   accountCmd   `cmd:"" help:"Manage bank accounts."`
	Import    importCmd    `cmd:"" help:"Import a statement file for an account."`
	Reconcile reconcileCmd `cmd:"" help:"Recompute running balances for a statement."`
	Detect    detectCmd    `cmd:"" help:"Scan unlinked transactions for transfer candidates."`
	Review    reviewCmd    `cmd:"" help:"Review transfer candidates."`
}

func main() {
	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
