/*Ledger store selection and global options*/
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"bookledger/internal/gateway"
	"bookledger/internal/logger"
)

// globals holds options shared by every command.
type globals struct {
	Store   string `default:"jsonfile:ledger.json" help:"Where ledger state lives [jsonfile:/path/to/file.json or mem:]"`
	Verbose bool   `help:"Enable debug logging."`
}

// context returns a base context carrying the configured logger.
func (g *globals) context() context.Context {
	log := logger.New()
	if !g.Verbose {
		log = log.Level(zerolog.InfoLevel)
	}
	return logger.WithContext(context.Background(), log)
}

// openStore loads the configured store. The returned save func persists the
// store back; for mem: it is a no-op.
func (g *globals) openStore() (*gateway.MemStore, func() error, error) {
	bits := strings.SplitN(g.Store, ":", 2)
	if len(bits) != 2 {
		return nil, nil, fmt.Errorf("invalid store, expected [jsonfile:/path/to/file.json] or [mem:]")
	}

	if bits[0] == "mem" {
		s := gateway.NewMemStore()
		return s, func() error { return nil }, nil
	}

	file := gateway.NewJSONFile(bits[1])
	s, err := file.Read()
	if err != nil {
		return nil, nil, err
	}
	return s, func() error { return file.Write(s) }, nil
}
