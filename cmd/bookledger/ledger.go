/*Ledger setup and account management*/
package main

import (
	"fmt"

	"bookledger/internal/domain"
)

type initCmd struct{}

func (c *initCmd) Run(g *globals) error {
	s, save, err := g.openStore()
	if err != nil {
		return err
	}

	s.PutCategory(domain.Category{
		ID:   "internal-transfer",
		Name: "Internal Transfer",
		Kind: domain.CategoryKindInternalTransfer,
	})

	fmt.Println("ledger initialised at", g.Store)
	return save()
}

type accountCmd struct {
	Add addAccountCmd `cmd:"" help:"Add a bank account."`
}

type addAccountCmd struct {
	ID          string `arg:"" required:"" help:"Account identifier."`
	Name        string `help:"Display name."`
	Institution string `help:"Institution name."`
	Type        string `default:"checking" help:"Account type [checking savings credit card ...]."`
	Currency    string `default:"CAD" help:"Account currency."`
	Company     string `help:"Company the account belongs to."`
}

func (c *addAccountCmd) Run(g *globals) error {
	s, save, err := g.openStore()
	if err != nil {
		return err
	}

	s.PutAccount(domain.BankAccount{
		ID:          c.ID,
		DisplayName: c.Name,
		Institution: c.Institution,
		AccountType: c.Type,
		Currency:    c.Currency,
		CompanyID:   c.Company,
	})

	fmt.Println("account added:", c.ID)
	return save()
}
