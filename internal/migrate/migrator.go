package migrate

import (
	"context"
	"strconv"

	"dns-migrator/internal/models"
)

type Registrar interface {
	GetRecords(ctx context.Context, domain string) []models.SourceRecord
	UpdateNameservers(ctx context.Context, domain string,
		nameservers []string) (success bool)
}

type ZoneProvider interface {
	FindZoneID(ctx context.Context, domain string) (zoneID string)
	CreateZone(ctx context.Context, domain string) (zoneID string, err error)
	GetNameservers(ctx context.Context, zoneID string) (nameservers []string)
	ApplyChangeBatch(ctx context.Context, zoneID string,
		entries []models.ChangeSetEntry) error
}

// Migrator drives one domain at a time through the full migration
// sequence: fetch, decide, resolve or create the destination zone,
// transform and apply records, then cut delegation over.
type Migrator struct {
	registrar Registrar
	zones     ZoneProvider
	decider   *Decider
	logger    Logger
}

func NewMigrator(registrar Registrar, zones ZoneProvider,
	decider *Decider, logger Logger) *Migrator {
	return &Migrator{
		registrar: registrar,
		zones:     zones,
		decider:   decider,
		logger:    logger,
	}
}

// MigrateAll processes the batch strictly sequentially and returns
// one outcome per input domain, in order. A failure of one domain
// never prevents the following domains from being attempted.
func (m *Migrator) MigrateAll(ctx context.Context,
	domains []*models.Domain) (outcomes []models.Outcome) {
	outcomes = make([]models.Outcome, 0, len(domains))
	for _, domain := range domains {
		m.logger.Info("processing domain " + domain.Name)
		outcomes = append(outcomes, m.Migrate(ctx, domain))
	}
	return outcomes
}

// Migrate runs the migration sequence for a single domain.
func (m *Migrator) Migrate(ctx context.Context,
	domain *models.Domain) (outcome models.Outcome) {
	outcome.Domain = domain.Name
	outcome.RowIndex = domain.RowIndex

	records, fetched := domain.Records()
	if !fetched {
		domain.SetRecords(m.registrar.GetRecords(ctx, domain.Name))
		records, _ = domain.Records()
	}

	hasDNS := m.decider.HasDNSPresence(domain.Name, records)
	outcome.HasDNS = &hasDNS
	supportsEmail := HasMXRecords(records)
	outcome.SupportsEmail = &supportsEmail

	required := m.decider.RequiresMigration(domain.Name, records)
	outcome.RequiresMigration = &required
	if !required {
		recordsApplied := false
		outcome.RecordsApplied = &recordsApplied
		return outcome
	}

	zoneID := m.resolveZone(ctx, domain)
	if zoneID == "" {
		// Zone creation failed: this domain stalls here, the batch
		// continues with the next domain.
		return outcome
	}
	outcome.ZoneID = zoneID

	entries := Transform(domain.Name, records, m.logger)
	err := m.zones.ApplyChangeBatch(ctx, zoneID, entries)
	if err != nil {
		m.logger.Error("applying record changes for " + domain.Name +
			": " + err.Error())
		outcome.Err = err
		return outcome
	}
	recordsApplied := true
	outcome.RecordsApplied = &recordsApplied

	nameservers := m.zones.GetNameservers(ctx, zoneID)
	if len(nameservers) > 0 {
		pushed := m.registrar.UpdateNameservers(ctx, domain.Name, nameservers)
		outcome.NameserversPushed = &pushed
	}

	return outcome
}

func (m *Migrator) resolveZone(ctx context.Context,
	domain *models.Domain) (zoneID string) {
	zoneID = domain.ZoneID()
	if zoneID != "" {
		return zoneID
	}

	zoneID = m.zones.FindZoneID(ctx, domain.Name)
	if zoneID == "" {
		var err error
		zoneID, err = m.zones.CreateZone(ctx, domain.Name)
		if err != nil {
			m.logger.Error("zone creation failed for " + domain.Name +
				": " + err.Error())
			return ""
		}
	}

	domain.SetZoneID(zoneID)
	m.logger.Debug("hosted zone for " + domain.Name + " is " + zoneID +
		" (row " + strconv.Itoa(domain.RowIndex) + ")")
	return zoneID
}
