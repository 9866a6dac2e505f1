package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/msaleev/finsent"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Source     finsent.FilingSource
	Directory  finsent.CompanyDirectory
	Stripper   finsent.Stripper
	Catalog    finsent.CatalogService
	Classifier finsent.Classifier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Fetch     FetchCmd     `cmd:"" help:"Download filings and extract narrative reports"`
	Extract   ExtractCmd   `cmd:"" help:"Extract a narrative report from a local filing file"`
	Search    SearchCmd    `cmd:"" help:"Search EDGAR for companies by name or ticker"`
	Classify  ClassifyCmd  `cmd:"" help:"Classify the sentiment of a report or text file"`
	List      ListCmd      `cmd:"" help:"List cataloged filings"`
	Companies CompaniesCmd `cmd:"" help:"List built-in common company tickers and CIKs"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	CIK     string `help:"Company CIK (up to 10 digits)" xor:"company"`
	Ticker  string `help:"Stock ticker symbol (e.g., AAPL, NVDA)" xor:"company"`
	Company string `help:"Company name" xor:"company"`

	Forms      []string `default:"10-Q" help:"Form types to download"`
	MaxFilings int      `default:"5" help:"Maximum number of filings to download"`
	OutputDir  string   `default:"data/processed/earnings_reports" help:"Output directory for reports"`

	Classify bool `help:"Classify sentiment of each extracted report"`
	KeepRaw  bool `help:"Keep the raw submission text next to each report"`
	Force    bool `short:"f" help:"Reprocess filings already in the catalog"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input  string `arg:"" help:"Path to a raw filing file"`
	Output string `arg:"" optional:"" help:"Output path (default: <input>_converted.txt)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Company name or ticker symbol"`
	Limit int    `default:"10" help:"Maximum number of results"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	Input     string `arg:"" help:"Path to a report or plain text file"`
	Accession string `help:"Record the label on the cataloged filing with this accession number"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	CIK  string `help:"Filter by CIK"`
	Form string `help:"Filter by form type"`
}

// CompaniesCmd is the "companies" subcommand.
type CompaniesCmd struct{}
