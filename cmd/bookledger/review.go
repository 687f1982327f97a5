/*Transfer candidate detection and review*/
package main

import (
	"fmt"

	"bookledger/internal/domain"
	"bookledger/internal/usecase"
)

type detectCmd struct{}

func (c *detectCmd) Run(g *globals) error {
	store, save, err := g.openStore()
	if err != nil {
		return err
	}

	uc := usecase.NewDetectUseCase(store, store, store, store)
	found, err := uc.Detect(g.context())
	if err != nil {
		return err
	}

	for _, cand := range found {
		fmt.Printf("%s  %s -> %s  %s %s  confidence %d\n",
			cand.ID, cand.FromTransactionID, cand.ToTransactionID,
			cand.FromAmount, cand.FromCurrency, cand.Confidence)
	}
	fmt.Printf("%d candidate(s) detected\n", len(found))
	return save()
}

type reviewCmd struct {
	List    listCandidatesCmd `cmd:"" help:"List pending transfer candidates."`
	Confirm confirmCmd        `cmd:"" help:"Confirm a candidate and link both transactions."`
	Reject  rejectCmd         `cmd:"" help:"Reject a candidate."`
}

type listCandidatesCmd struct {
	Account       string `help:"Only candidates touching this account."`
	MinConfidence int    `help:"Minimum confidence score."`
	Limit         int    `help:"Maximum number of candidates to show."`
}

func (c *listCandidatesCmd) Run(g *globals) error {
	store, _, err := g.openStore()
	if err != nil {
		return err
	}

	uc := usecase.NewReviewUseCase(store, store)
	items, err := uc.ListPending(g.context(), domain.CandidateQuery{
		AccountID:     c.Account,
		MinConfidence: c.MinConfidence,
		Limit:         c.Limit,
	})
	if err != nil {
		return err
	}

	for _, item := range items {
		cand := item.Candidate
		flag := ""
		if item.MandatoryReview {
			flag = "  [manual review]"
		}
		fmt.Printf("%s  %s -> %s  %s %s  confidence %d (%s)%s\n",
			cand.ID, cand.FromTransactionID, cand.ToTransactionID,
			cand.FromAmount, cand.FromCurrency, cand.Confidence, item.Band, flag)
		for _, v := range item.Violations {
			fmt.Printf("    ! %s\n", v)
		}
	}
	fmt.Printf("%d pending candidate(s)\n", len(items))
	return nil
}

type confirmCmd struct {
	Candidate string `arg:"" required:"" help:"Candidate ID to confirm."`
}

func (c *confirmCmd) Run(g *globals) error {
	store, save, err := g.openStore()
	if err != nil {
		return err
	}

	uc := usecase.NewReviewUseCase(store, store)
	if err := uc.Confirm(g.context(), c.Candidate); err != nil {
		return err
	}

	fmt.Println("confirmed", c.Candidate)
	return save()
}

type rejectCmd struct {
	Candidate string `arg:"" required:"" help:"Candidate ID to reject."`
	Reason    string `help:"Why this is not an internal transfer."`
}

func (c *rejectCmd) Run(g *globals) error {
	store, save, err := g.openStore()
	if err != nil {
		return err
	}

	uc := usecase.NewReviewUseCase(store, store)
	if err := uc.Reject(g.context(), c.Candidate, c.Reason); err != nil {
		return err
	}

	fmt.Println("rejected", c.Candidate)
	return save()
}
