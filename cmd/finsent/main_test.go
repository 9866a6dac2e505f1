package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msaleev/finsent"
	"github.com/msaleev/finsent/goquery"
	"github.com/msaleev/finsent/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDeps returns Dependencies wired for command unit tests.
func newTestDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	deps := &Dependencies{
		Ctx:      context.Background(),
		Stdout:   &stdout,
		Stderr:   &stderr,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stripper: goquery.NewStripper(),
	}
	return deps, &stdout, &stderr
}

func TestMain_Run(t *testing.T) {
	t.Run("requires a command", func(t *testing.T) {
		m := NewMain()
		defer m.Close()

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help", func(t *testing.T) {
		m := NewMain()
		defer m.Close()

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "finsent")
		assert.Contains(t, stdout.String(), "fetch")
		assert.Contains(t, stdout.String(), "extract")
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		m := NewMain()
		defer m.Close()

		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"frobnicate"}, &stdout, &stderr)
		assert.Error(t, err)
	})
}

func TestExtractCmd_Run(t *testing.T) {
	t.Run("writes a report for a filing with narrative content", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "filing.txt")

		narrative := strings.Repeat("The company reported strong quarterly revenue and improved operating margins across all geographic segments during the period. ", 15)
		raw := "<SEC-DOCUMENT>header junk\n<DOCUMENT>\n<html><body>" +
			"<p>Management's Discussion and Analysis</p><p>" + narrative + "</p>" +
			"</body></html>\n</DOCUMENT>\ntrailer"
		require.NoError(t, os.WriteFile(input, []byte(raw), 0644))

		deps, stdout, _ := newTestDeps()
		cmd := &ExtractCmd{Input: input}
		require.NoError(t, cmd.Run(deps))

		output := filepath.Join(dir, "filing_converted.txt")
		assert.Contains(t, stdout.String(), output)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Financial Narrative Extracted from: "+input)
		assert.Contains(t, string(content), "Section 1:")
		assert.Contains(t, string(content), "strong quarterly revenue")
		assert.NotContains(t, string(content), "<p>")
		assert.NotContains(t, string(content), "header junk")
	})

	t.Run("honors an explicit output path", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "filing.txt")
		output := filepath.Join(dir, "out.txt")

		narrative := strings.Repeat("Quarterly earnings grew as the business expanded into new markets and services revenue accelerated meaningfully. ", 15)
		require.NoError(t, os.WriteFile(input, []byte("Revenue Overview\n"+narrative), 0644))

		deps, _, _ := newTestDeps()
		cmd := &ExtractCmd{Input: input, Output: output}
		require.NoError(t, cmd.Run(deps))
		assert.FileExists(t, output)
	})

	t.Run("reports when no narrative is found", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "filing.txt")
		require.NoError(t, os.WriteFile(input, []byte("just a cover page"), 0644))

		deps, stdout, _ := newTestDeps()
		cmd := &ExtractCmd{Input: input}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No narrative sections found in the file.")
		assert.NoFileExists(t, filepath.Join(dir, "filing_converted.txt"))
	})

	t.Run("fails on a missing input file", func(t *testing.T) {
		deps, _, _ := newTestDeps()
		cmd := &ExtractCmd{Input: filepath.Join(t.TempDir(), "missing.txt")}
		assert.Error(t, cmd.Run(deps))
	})
}

func TestSearchCmd_Run(t *testing.T) {
	t.Run("prints matching companies", func(t *testing.T) {
		deps, stdout, _ := newTestDeps()
		deps.Directory = &mock.CompanyDirectory{
			SearchCompaniesFn: func(ctx context.Context, query string, limit int) ([]finsent.Company, error) {
				assert.Equal(t, "apple", query)
				assert.Equal(t, 10, limit)
				return []finsent.Company{
					{CIK: "0000320193", Ticker: "AAPL", Name: "Apple Inc."},
				}, nil
			},
		}

		cmd := &SearchCmd{Query: "apple", Limit: 10}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Found 1 companies:")
		assert.Contains(t, stdout.String(), "Apple Inc.")
		assert.Contains(t, stdout.String(), "Ticker: AAPL")
		assert.Contains(t, stdout.String(), "CIK: 0000320193")
	})

	t.Run("reports an empty result", func(t *testing.T) {
		deps, stdout, _ := newTestDeps()
		deps.Directory = &mock.CompanyDirectory{
			SearchCompaniesFn: func(ctx context.Context, query string, limit int) ([]finsent.Company, error) {
				return nil, nil
			},
		}

		cmd := &SearchCmd{Query: "nonexistent", Limit: 10}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No companies found.")
	})

	t.Run("surfaces lookup failures", func(t *testing.T) {
		deps, _, stderr := newTestDeps()
		deps.Directory = &mock.CompanyDirectory{
			SearchCompaniesFn: func(ctx context.Context, query string, limit int) ([]finsent.Company, error) {
				return nil, finsent.Errorf(finsent.EUNAVAILABLE, "SEC is down")
			},
		}

		cmd := &SearchCmd{Query: "apple", Limit: 10}
		assert.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "SEC is down")
	})
}

func TestClassifyCmd_Run(t *testing.T) {
	t.Run("prints the sentiment label", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "report.txt")
		require.NoError(t, os.WriteFile(input, []byte("Revenue grew sharply."), 0644))

		deps, stdout, _ := newTestDeps()
		deps.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, text string) (string, error) {
				assert.Contains(t, text, "Revenue grew sharply.")
				return finsent.SentimentPositive, nil
			},
		}

		cmd := &ClassifyCmd{Input: input}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "Sentiment: positive\n", stdout.String())
	})

	t.Run("records the label on a cataloged filing", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "report.txt")
		require.NoError(t, os.WriteFile(input, []byte("Margins deteriorated."), 0644))

		var updates []string
		deps, stdout, _ := newTestDeps()
		deps.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, text string) (string, error) {
				return finsent.SentimentNegative, nil
			},
		}
		deps.Catalog = &mock.CatalogService{
			FindFilingByAccessionFn: func(ctx context.Context, accession string) (*finsent.Filing, error) {
				assert.Equal(t, "0000320193-25-000073", accession)
				return &finsent.Filing{ID: "filing-id", AccessionNumber: accession}, nil
			},
			UpdateFilingSentimentFn: func(ctx context.Context, id, sentiment string) error {
				updates = append(updates, id+"="+sentiment)
				return nil
			},
		}

		cmd := &ClassifyCmd{Input: input, Accession: "0000320193-25-000073"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, []string{"filing-id=negative"}, updates)
		assert.Contains(t, stdout.String(), "Recorded for 0000320193-25-000073")
	})

	t.Run("errors when the accession is not cataloged", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "report.txt")
		require.NoError(t, os.WriteFile(input, []byte("Margins deteriorated."), 0644))

		deps, _, stderr := newTestDeps()
		deps.Classifier = &mock.Classifier{
			ClassifyFn: func(ctx context.Context, text string) (string, error) {
				return finsent.SentimentNegative, nil
			},
		}
		deps.Catalog = &mock.CatalogService{
			FindFilingByAccessionFn: func(ctx context.Context, accession string) (*finsent.Filing, error) {
				return nil, finsent.Errorf(finsent.ENOTFOUND, "filing not found")
			},
		}

		cmd := &ClassifyCmd{Input: input, Accession: "0000000000-00-000000"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "filing not found")
	})
}

func TestListCmd_Run(t *testing.T) {
	t.Run("prints cataloged filings with filters applied", func(t *testing.T) {
		deps, stdout, _ := newTestDeps()
		deps.Catalog = &mock.CatalogService{
			FindFilingsFn: func(ctx context.Context, filter finsent.FilingFilter) ([]*finsent.Filing, error) {
				require.NotNil(t, filter.CIK)
				assert.Equal(t, "0000320193", *filter.CIK)
				require.NotNil(t, filter.FormType)
				assert.Equal(t, "10-Q", *filter.FormType)
				return []*finsent.Filing{
					{
						AccessionNumber: "0000320193-25-000073",
						FormType:        "10-Q",
						CompanyName:     "Apple Inc.",
						Sentiment:       finsent.SentimentPositive,
					},
				}, nil
			},
		}

		cmd := &ListCmd{CIK: "0000320193", Form: "10-Q"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "0000320193-25-000073")
		assert.Contains(t, stdout.String(), "Apple Inc.")
		assert.Contains(t, stdout.String(), "positive")
	})

	t.Run("reports an empty catalog", func(t *testing.T) {
		deps, stdout, _ := newTestDeps()
		deps.Catalog = &mock.CatalogService{
			FindFilingsFn: func(ctx context.Context, filter finsent.FilingFilter) ([]*finsent.Filing, error) {
				return nil, nil
			},
		}

		cmd := &ListCmd{}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No filings cataloged")
	})
}

func TestCompaniesCmd_Run(t *testing.T) {
	deps, stdout, _ := newTestDeps()
	cmd := &CompaniesCmd{}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stdout.String(), "Common Company Tickers and CIKs:")
	assert.Contains(t, stdout.String(), "AAPL")
	assert.Contains(t, stdout.String(), "0000320193")
}

func TestFetchCmd_resolveCIK(t *testing.T) {
	t.Run("pads an explicit CIK", func(t *testing.T) {
		deps, _, _ := newTestDeps()
		cmd := &FetchCmd{CIK: "320193"}
		cik, err := cmd.resolveCIK(deps)
		require.NoError(t, err)
		assert.Equal(t, "0000320193", cik)
	})

	t.Run("resolves a ticker through the directory", func(t *testing.T) {
		deps, _, _ := newTestDeps()
		deps.Directory = &mock.CompanyDirectory{
			LookupCIKFn: func(ctx context.Context, identifier string) (string, error) {
				assert.Equal(t, "AAPL", identifier)
				return "0000320193", nil
			},
		}

		cmd := &FetchCmd{Ticker: "AAPL"}
		cik, err := cmd.resolveCIK(deps)
		require.NoError(t, err)
		assert.Equal(t, "0000320193", cik)
	})

	t.Run("requires some identifier", func(t *testing.T) {
		deps, _, _ := newTestDeps()
		cmd := &FetchCmd{}
		_, err := cmd.resolveCIK(deps)
		assert.Equal(t, finsent.EINVALID, finsent.ErrorCode(err))
	})
}

func TestFetchCmd_Run(t *testing.T) {
	t.Run("runs the pipeline end to end with mocks", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "reports")

		narrative := strings.Repeat("The company reported strong quarterly revenue and improved operating margins across all geographic segments during the period. ", 15)
		raw := "<DOCUMENT>\nManagement's Discussion and Analysis\n\n" + strings.TrimSpace(narrative) + "\n</DOCUMENT>"

		deps, stdout, _ := newTestDeps()
		deps.Source = &mock.FilingSource{
			FetchFilingsFn: func(ctx context.Context, cik string, formTypes []string, max int) ([]*finsent.Filing, error) {
				assert.Equal(t, "0000320193", cik)
				return []*finsent.Filing{{
					CIK:             "0000320193",
					CompanyName:     "Apple Inc.",
					FormType:        "10-Q",
					AccessionNumber: "0000320193-25-000073",
					Content:         raw,
				}}, nil
			},
		}

		cmd := &FetchCmd{
			CIK:        "320193",
			Forms:      []string{"10-Q"},
			MaxFilings: 5,
			OutputDir:  outputDir,
		}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "[1/1] 0000320193-25-000073")
		assert.Contains(t, stdout.String(), "Saved 1 reports")
		assert.FileExists(t, filepath.Join(outputDir, "0000320193_Apple_Inc._10-Q_converted.txt"))
	})
}
