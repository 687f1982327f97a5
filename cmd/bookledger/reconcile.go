/*Statement reconciliation output*/
package main

import (
	"encoding/json"
	"fmt"

	"bookledger/internal/usecase"
)

type reconcileCmd struct {
	Statement string `arg:"" required:"" help:"Statement ID to reconcile."`
}

func (c *reconcileCmd) Run(g *globals) error {
	store, _, err := g.openStore()
	if err != nil {
		return err
	}

	uc := usecase.NewStatementUseCase(store)
	report, err := uc.Reconcile(g.context(), c.Statement)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !report.Result.Balanced {
		return fmt.Errorf("statement %s does not balance, discrepancy %s", c.Statement, report.Result.Discrepancy)
	}
	return nil
}
