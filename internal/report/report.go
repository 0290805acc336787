// Package report reads the input domain list from a CSV file and
// writes the same table back out with the per-domain migration
// outcome columns filled in.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"dns-migrator/internal/errs"
	"dns-migrator/internal/models"
)

const nameColumn = "Name"

// Outcome columns added to the output, in order.
const (
	columnHasDNS         = "Has GoDaddy DNS"
	columnRequiresChange = "Requires DNS Migration"
	columnZoneID         = "AWS Zone ID"
	columnRecordsCreated = "AWS DNS Records Created"
	columnSupportsEmail  = "Supports Email"
)

// Batch is the tabular domain list with one row per domain. Each
// domain writes only to its own row, so filling outcomes in any
// order is safe.
type Batch struct {
	header      []string
	rows        [][]string
	columnIndex map[string]int
	nameIndex   int
}

// ReadFile parses the CSV file at the given path. The file must have
// a header row containing a "Name" column; outcome columns are added
// to the header if not already present, and every row is padded to
// the full header width so unreached fields stay blank.
func ReadFile(path string) (batch *Batch, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening domain list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing domain list: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("%w: %s: file is empty",
			errs.ErrNameColumnMissing, path)
	}

	batch = &Batch{
		header:      allRows[0],
		rows:        allRows[1:],
		columnIndex: make(map[string]int),
		nameIndex:   -1,
	}
	for i, name := range batch.header {
		batch.columnIndex[name] = i
		if name == nameColumn {
			batch.nameIndex = i
		}
	}
	if batch.nameIndex == -1 {
		return nil, fmt.Errorf("%w: %s", errs.ErrNameColumnMissing, path)
	}

	outcomeColumns := []string{columnHasDNS, columnRequiresChange,
		columnZoneID, columnRecordsCreated, columnSupportsEmail}
	for _, column := range outcomeColumns {
		if _, ok := batch.columnIndex[column]; !ok {
			batch.columnIndex[column] = len(batch.header)
			batch.header = append(batch.header, column)
		}
	}

	for i, row := range batch.rows {
		for len(row) < len(batch.header) {
			row = append(row, "")
		}
		batch.rows[i] = row
	}

	return batch, nil
}

// Domains builds one domain per row, keyed back to its row index.
func (b *Batch) Domains() (domains []*models.Domain) {
	domains = make([]*models.Domain, 0, len(b.rows))
	for i, row := range b.rows {
		domains = append(domains, models.NewDomain(row[b.nameIndex], i))
	}
	return domains
}

// Apply fills the outcome columns of the outcome's row. Nil outcome
// fields leave their cells blank.
func (b *Batch) Apply(outcome models.Outcome) {
	row := b.rows[outcome.RowIndex]
	row[b.columnIndex[columnHasDNS]] = formatYesNo(outcome.HasDNS)
	row[b.columnIndex[columnRequiresChange]] = formatYesNo(outcome.RequiresMigration)
	row[b.columnIndex[columnZoneID]] = outcome.ZoneID
	row[b.columnIndex[columnRecordsCreated]] = formatYesNo(outcome.RecordsApplied)
	row[b.columnIndex[columnSupportsEmail]] = formatYesNo(outcome.SupportsEmail)
}

// WriteFile writes the table with its outcome columns to the given
// path, overwriting any existing file.
func (b *Batch) WriteFile(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	writer := csv.NewWriter(file)
	err = writer.Write(b.header)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	err = writer.WriteAll(b.rows)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("writing rows: %w", err)
	}
	writer.Flush()
	err = writer.Error()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("flushing output: %w", err)
	}

	return file.Close()
}

func formatYesNo(value *bool) string {
	switch {
	case value == nil:
		return ""
	case *value:
		return "Yes"
	default:
		return "No"
	}
}
