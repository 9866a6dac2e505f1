package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/msaleev/finsent"
)

// Compile-time interface verification.
var _ finsent.CatalogService = (*CatalogService)(nil)

// CatalogService implements finsent.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateFiling records a processed filing.
func (s *CatalogService) CreateFiling(ctx context.Context, filing *finsent.Filing) error {
	if err := filing.Validate(); err != nil {
		return err
	}

	filing.ID = uuid.New().String()
	filing.ContentHash = hashContent(filing.Content)
	if filing.RetrievedAt.IsZero() {
		filing.RetrievedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO filings (id, cik, company_name, form_type, accession_number, filing_date, primary_document, content_hash, sentiment, retrieved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, filing.ID, filing.CIK, filing.CompanyName, filing.FormType, filing.AccessionNumber,
		formatDate(filing.FilingDate), filing.PrimaryDocument, filing.ContentHash,
		filing.Sentiment, filing.RetrievedAt.Format(time.RFC3339))

	return err
}

const filingColumns = "id, cik, company_name, form_type, accession_number, filing_date, primary_document, content_hash, sentiment, retrieved_at"

// scanFiling scans one filings row.
func scanFiling(scan func(dest ...any) error) (*finsent.Filing, error) {
	var filing finsent.Filing
	var filingDate, retrievedAt string

	if err := scan(&filing.ID, &filing.CIK, &filing.CompanyName, &filing.FormType,
		&filing.AccessionNumber, &filingDate, &filing.PrimaryDocument,
		&filing.ContentHash, &filing.Sentiment, &retrievedAt); err != nil {
		return nil, err
	}

	var err error
	if filing.FilingDate, err = parseDate(filingDate); err != nil {
		return nil, err
	}
	if filing.RetrievedAt, err = parseRFC3339(retrievedAt, "retrieved_at"); err != nil {
		return nil, err
	}
	return &filing, nil
}

// FindFilingByAccession retrieves a filing by accession number.
func (s *CatalogService) FindFilingByAccession(ctx context.Context, accession string) (*finsent.Filing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+filingColumns+` FROM filings WHERE accession_number = ?
	`, accession)

	filing, err := scanFiling(row.Scan)
	if err == sql.ErrNoRows {
		return nil, finsent.Errorf(finsent.ENOTFOUND, "filing not found")
	}
	if err != nil {
		return nil, err
	}
	return filing, nil
}

// FindFilings retrieves filings matching the filter, most recent
// filing date first.
func (s *CatalogService) FindFilings(ctx context.Context, filter finsent.FilingFilter) ([]*finsent.Filing, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + filingColumns + " FROM filings WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CIK != nil {
		query.WriteString(" AND cik = ?")
		args = append(args, *filter.CIK)
	}
	if filter.FormType != nil {
		query.WriteString(" AND form_type = ?")
		args = append(args, *filter.FormType)
	}
	if filter.AccessionNumber != nil {
		query.WriteString(" AND accession_number = ?")
		args = append(args, *filter.AccessionNumber)
	}

	query.WriteString(" ORDER BY filing_date DESC, accession_number DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var filings []*finsent.Filing
	for rows.Next() {
		filing, err := scanFiling(rows.Scan)
		if err != nil {
			return nil, err
		}
		filings = append(filings, filing)
	}
	return filings, rows.Err()
}

// UpdateFilingSentiment records the classifier's label for a filing.
func (s *CatalogService) UpdateFilingSentiment(ctx context.Context, id, sentiment string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE filings SET sentiment = ? WHERE id = ?
	`, sentiment, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return finsent.Errorf(finsent.ENOTFOUND, "filing not found")
	}
	return nil
}

// CreateSection records one extracted section.
func (s *CatalogService) CreateSection(ctx context.Context, record *finsent.SectionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (id, filing_id, position, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, record.ID, record.FilingID, record.Position, record.Content,
		record.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSectionsByFiling retrieves a filing's sections ordered by
// position.
func (s *CatalogService) FindSectionsByFiling(ctx context.Context, filingID string) ([]*finsent.SectionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filing_id, position, content, created_at
		FROM sections
		WHERE filing_id = ?
		ORDER BY position ASC
	`, filingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*finsent.SectionRecord
	for rows.Next() {
		var record finsent.SectionRecord
		var createdAt string

		if err := rows.Scan(&record.ID, &record.FilingID, &record.Position,
			&record.Content, &createdAt); err != nil {
			return nil, err
		}
		if record.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

// DeleteFiling removes a filing; sections cascade.
func (s *CatalogService) DeleteFiling(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM filings WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return finsent.Errorf(finsent.ENOTFOUND, "filing not found")
	}
	return nil
}
