// Package fs provides file-based storage for extraction reports.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/msaleev/finsent"
)

// Ensure ReportStore implements finsent.ReportStore at compile time.
var _ finsent.ReportStore = (*ReportStore)(nil)

// ReportStore implements finsent.ReportStore with atomic update
// semantics. Reports are saved to a temporary directory, then moved
// into place on Commit, so a partially processed batch never leaves
// half-written artifacts in the output directory.
type ReportStore struct {
	baseDir string
	name    string
}

// NewReportStore creates a new ReportStore. baseDir is the parent
// directory, name is the output directory name. Files are saved to
// baseDir/name.tmp and moved to baseDir/name on Commit.
func NewReportStore(baseDir, name string) *ReportStore {
	return &ReportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ReportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ReportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the directory committed reports land in.
func (s *ReportStore) Dir() string {
	return s.finalDir()
}

// ReportPath returns the file name a report is written under,
// following the original converted-artifact naming convention.
func ReportPath(label string) string {
	return label + "_converted.txt"
}

// rawPath returns the file name for a retained raw submission.
func rawPath(label string) string {
	return label + "_raw.txt"
}

// Save writes a report, and optionally its raw source, to the
// temporary directory.
func (s *ReportStore) Save(ctx context.Context, report *finsent.Report) error {
	if report.SourceLabel == "" {
		return finsent.Errorf(finsent.EINVALID, "report source label required")
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	content := finsent.FormatReport(report.Sections, report.SourceLabel)
	path := filepath.Join(s.tempDir(), ReportPath(report.SourceLabel))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}

	if report.Raw != "" {
		rawFile := filepath.Join(s.tempDir(), rawPath(report.SourceLabel))
		if err := os.WriteFile(rawFile, []byte(report.Raw), 0644); err != nil {
			return err
		}
	}

	return nil
}

// Commit moves the pending reports into the final directory. Files
// from earlier runs are kept; a report with the same name is replaced.
func (s *ReportStore) Commit() error {
	entries, err := os.ReadDir(s.tempDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := os.MkdirAll(s.finalDir(), 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		src := filepath.Join(s.tempDir(), entry.Name())
		dst := filepath.Join(s.finalDir(), entry.Name())
		if err := os.Rename(src, dst); err != nil {
			return err
		}
	}
	return os.Remove(s.tempDir())
}

// Abort discards pending reports.
func (s *ReportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
