package models

// Outcome collects what was established for one domain during a run.
// Pointer fields are nil when processing stopped before reaching the
// corresponding step, so the report can leave them blank.
type Outcome struct {
	Domain            string
	RowIndex          int
	HasDNS            *bool
	RequiresMigration *bool
	ZoneID            string
	RecordsApplied    *bool
	NameserversPushed *bool
	SupportsEmail     *bool
	// Err is set when applying the record change batch failed,
	// aborting the remaining steps for this domain only.
	Err error
}
