package models

import "strings"

// Domain is one registrable name under migration. Its source records
// and destination zone id are each fetched at most once per run and
// memoized here; the explicit fetched flag makes the write-once cache
// visible instead of hiding it behind a lazy accessor.
type Domain struct {
	Name     string
	RowIndex int

	records        []SourceRecord
	recordsFetched bool
	zoneID         string
}

// NewDomain normalizes the given name to its canonical lowercased
// trimmed form, which is the key used for all backend lookups.
func NewDomain(name string, rowIndex int) *Domain {
	return &Domain{
		Name:     strings.ToLower(strings.TrimSpace(name)),
		RowIndex: rowIndex,
	}
}

func (d *Domain) Records() (records []SourceRecord, fetched bool) {
	return d.records, d.recordsFetched
}

// SetRecords memoizes the fetched records for the rest of the run.
// A nil or empty slice is a valid value meaning no DNS presence.
func (d *Domain) SetRecords(records []SourceRecord) {
	d.records = records
	d.recordsFetched = true
}

func (d *Domain) ZoneID() string {
	return d.zoneID
}

func (d *Domain) SetZoneID(zoneID string) {
	d.zoneID = zoneID
}
