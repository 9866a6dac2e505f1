package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/msaleev/finsent"
	"github.com/msaleev/finsent/edgar"
	"github.com/msaleev/finsent/fs"
	"github.com/msaleev/finsent/pipeline"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	cik, err := c.resolveCIK(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", finsent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracting %d %s filings for CIK %s...\n",
		c.MaxFilings, strings.Join(c.Forms, ", "), cik)

	store := fs.NewReportStore(filepath.Dir(c.OutputDir), filepath.Base(c.OutputDir))

	runner := &pipeline.Runner{
		Source:     deps.Source,
		Stripper:   deps.Stripper,
		Reports:    store,
		Catalog:    deps.Catalog,
		Classifier: deps.Classifier,
		Logger:     deps.Logger,
	}

	job := pipeline.Job{
		CIK:       cik,
		FormTypes: c.Forms,
		Max:       c.MaxFilings,
		KeepRaw:   c.KeepRaw,
		Classify:  c.Classify,
		Force:     c.Force,
	}

	progress := func(p pipeline.Progress) {
		switch {
		case p.Err != nil:
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", p.Accession, finsent.ErrorMessage(p.Err))
		case p.Skipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s skipped\n", p.Completed, p.Total, p.Accession)
		case p.Sentiment != "":
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s -> %s\n", p.Completed, p.Total, p.Accession, p.Sentiment)
		default:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", p.Completed, p.Total, p.Accession)
		}
	}

	result, err := runner.Run(deps.Ctx, job, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", finsent.ErrorMessage(err))
		return err
	}

	if result.Saved == 0 {
		fmt.Fprintln(deps.Stdout, "No reports saved")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Completed! Saved %d reports to %s\n", result.Saved, store.Dir())
	return nil
}

// resolveCIK determines the CIK from whichever identifier was given.
func (c *FetchCmd) resolveCIK(deps *Dependencies) (string, error) {
	switch {
	case c.CIK != "":
		return edgar.PadCIK(c.CIK), nil
	case c.Ticker != "":
		return deps.Directory.LookupCIK(deps.Ctx, c.Ticker)
	case c.Company != "":
		return deps.Directory.LookupCIK(deps.Ctx, c.Company)
	}
	return "", finsent.Errorf(finsent.EINVALID, "provide --cik, --ticker, or --company")
}
