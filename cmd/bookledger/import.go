/*Statement import through the job queue*/
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"bookledger/internal/domain"
	"bookledger/internal/gateway"
	"bookledger/internal/jobs"
	"bookledger/internal/jobs/inmemory"
	"bookledger/internal/usecase"
)

type importCmd struct {
	File    string `arg:"" required:"" help:"Statement file to import."`
	Account string `required:"" help:"Account ID the statement belongs to."`
	Opening string `default:"0" help:"Opening balance the bank reported."`
	Closing string `default:"0" help:"Closing balance the bank reported."`
	Remote  string `help:"Parse-function URL; when set the file is uploaded instead of read as CSV."`
	Workers int    `default:"2" help:"Concurrent import workers."`
}

func (c *importCmd) Run(g *globals) error {
	opening, err := decimal.NewFromString(c.Opening)
	if err != nil {
		return fmt.Errorf("invalid opening balance: %w", err)
	}
	closing, err := decimal.NewFromString(c.Closing)
	if err != nil {
		return fmt.Errorf("invalid closing balance: %w", err)
	}

	store, save, err := g.openStore()
	if err != nil {
		return err
	}

	ctx := g.context()
	uc := usecase.NewImportUseCase(gateway.NewCSVStatementReader(), store, store)

	jobStore := inmemory.NewStore()
	queue := inmemory.NewQueue(8, c.Workers, jobStore)
	defer queue.Close()

	handler := func(hctx context.Context, job jobs.Job) error {
		j, ok := job.(*jobs.ImportStatementJob)
		if !ok {
			return fmt.Errorf("unexpected job type %s", job.GetType())
		}
		st, err := c.importOne(hctx, uc, j, opening, closing)
		if err != nil {
			return err
		}
		j.StatementID = st.ID
		return nil
	}
	if err := queue.Start(ctx, handler); err != nil {
		return err
	}

	job := &jobs.ImportStatementJob{AccountID: c.Account, SourceURI: c.File}
	if err := queue.PublishImportStatement(ctx, job); err != nil {
		return err
	}

	poller := jobs.NewPoller(jobStore, 250*time.Millisecond)
	for snap := range poller.Watch(ctx, jobs.JobFilter{AccountID: c.Account}) {
		for _, j := range snap.Jobs {
			fmt.Printf("job %s: %s\n", j.JobID, j.Status)
		}
	}

	final, err := jobStore.GetJob(ctx, job.JobID)
	if err != nil {
		return err
	}
	if final.Status != jobs.JobStatusCompleted {
		return fmt.Errorf("import failed: %s", final.Error)
	}

	fmt.Println("imported statement", final.StatementID)
	return save()
}

// importOne runs one import job, either against the local CSV reader or the
// remote parsing function.
func (c *importCmd) importOne(ctx context.Context, uc *usecase.ImportUseCase, j *jobs.ImportStatementJob, opening, closing decimal.Decimal) (*domain.Statement, error) {
	if c.Remote == "" {
		return uc.ImportCSV(ctx, usecase.ImportCSVParams{
			AccountID:      j.AccountID,
			Path:           j.SourceURI,
			OpeningBalance: opening,
			ClosingBalance: closing,
		})
	}

	contents, err := os.ReadFile(j.SourceURI)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", j.SourceURI, err)
	}

	client := gateway.NewParseClient(c.Remote)
	parsed, err := client.ParseStatement(ctx, j.AccountID, filepath.Base(j.SourceURI), contents)
	if err != nil {
		return nil, err
	}
	return uc.ImportParsed(ctx, parsed.Statement, parsed.Transactions)
}
