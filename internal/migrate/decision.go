// Package migrate holds the migration decision rules, the record
// transformation into the destination change batch format, and the
// per-domain orchestration.
package migrate

import (
	"strconv"

	"dns-migrator/internal/models"
)

const (
	// apexName is the registrar's shorthand for the zone apex.
	apexName = "@"
	// parkedPlaceholder is the data value of the apex A record the
	// registrar ships when a domain points at its parking page.
	parkedPlaceholder = "Parked"
	// DefaultTrivialZoneSize is the record count at or below which a
	// parked zone is still migrated: the registrar's default zone
	// ships 5 boilerplate records, so anything close to that is
	// trivial and worth consolidating under the new provider.
	DefaultTrivialZoneSize = 6
)

type Logger interface {
	Debug(s string)
	Info(s string)
	Error(s string)
}

// Decider makes the two per-domain migration decisions from a
// domain's fetched record set.
type Decider struct {
	trivialZoneSize int
	logger          Logger
}

func NewDecider(trivialZoneSize int, logger Logger) *Decider {
	if trivialZoneSize == 0 {
		trivialZoneSize = DefaultTrivialZoneSize
	}
	return &Decider{
		trivialZoneSize: trivialZoneSize,
		logger:          logger,
	}
}

// HasDNSPresence reports whether the domain has any DNS records at
// the registrar. An empty record set also covers the soft-failed
// fetch case, which is treated identically.
func (d *Decider) HasDNSPresence(domain string,
	records []models.SourceRecord) bool {
	if len(records) > 0 {
		d.logger.Info("domain " + domain + " has DNS records at the registrar")
		return true
	}
	d.logger.Info("domain " + domain + " has no DNS records at the registrar")
	return false
}

// RequiresMigration reports whether the domain qualifies for
// migration. A domain with an actively configured apex (not parked)
// always qualifies; a parked domain only qualifies while its zone is
// trivially small. A larger, intentionally parked zone is left alone.
func (d *Decider) RequiresMigration(domain string,
	records []models.SourceRecord) bool {
	if len(records) == 0 {
		return false
	}

	parked := false
	for _, record := range records {
		if record.Name == apexName && record.Type == "A" &&
			record.Data == parkedPlaceholder {
			parked = true
		}
	}

	if !parked {
		d.logger.Info("domain " + domain +
			" requires migration: apex record is not parked")
		return true
	}

	if len(records) <= d.trivialZoneSize {
		d.logger.Info("domain " + domain +
			" requires migration: parked with only " +
			strconv.Itoa(len(records)) + " records")
		return true
	}

	return false
}

// HasMXRecords reports whether any record is an MX record. This only
// feeds the email capability column of the report, not the migration
// decision.
func HasMXRecords(records []models.SourceRecord) bool {
	for _, record := range records {
		if record.Type == "MX" {
			return true
		}
	}
	return false
}
