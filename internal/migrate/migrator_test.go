package migrate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dns-migrator/internal/models"
)

type fakeRegistrar struct {
	records          []models.SourceRecord
	getRecordsCalls  int
	pushSuccess      bool
	pushedDomains    []string
	pushedNameserver [][]string
}

func (f *fakeRegistrar) GetRecords(_ context.Context, _ string) []models.SourceRecord {
	f.getRecordsCalls++
	return f.records
}

func (f *fakeRegistrar) UpdateNameservers(_ context.Context, domain string,
	nameservers []string) bool {
	f.pushedDomains = append(f.pushedDomains, domain)
	f.pushedNameserver = append(f.pushedNameserver, nameservers)
	return f.pushSuccess
}

type fakeZoneProvider struct {
	existingZoneID string
	createdZoneID  string
	createErr      error
	nameservers    []string
	applyErr       error
	applyErrOnce   bool
	applied        []models.ChangeSetEntry
	appliedZoneID  string
	createCalls    int
}

func (f *fakeZoneProvider) FindZoneID(_ context.Context, _ string) string {
	return f.existingZoneID
}

func (f *fakeZoneProvider) CreateZone(_ context.Context, _ string) (string, error) {
	f.createCalls++
	return f.createdZoneID, f.createErr
}

func (f *fakeZoneProvider) GetNameservers(_ context.Context, _ string) []string {
	return f.nameservers
}

func (f *fakeZoneProvider) ApplyChangeBatch(_ context.Context, zoneID string,
	entries []models.ChangeSetEntry) error {
	f.appliedZoneID = zoneID
	f.applied = entries
	err := f.applyErr
	if f.applyErrOnce {
		f.applyErr = nil
	}
	return err
}

func activeZoneRecords() []models.SourceRecord {
	return []models.SourceRecord{
		{Name: "@", Type: "A", Data: "9.9.9.9", TTL: 600},
		{Name: "@", Type: "MX", Data: "mail.example.com", TTL: 3600, Priority: 10},
	}
}

func Test_Migrator_Migrate(t *testing.T) {
	t.Parallel()

	t.Run("full migration with cutover", func(t *testing.T) {
		t.Parallel()

		registrar := &fakeRegistrar{
			records:     activeZoneRecords(),
			pushSuccess: true,
		}
		zones := &fakeZoneProvider{
			createdZoneID: "/hostedzone/ZNEW",
			nameservers:   []string{"ns-1.awsdns.org"},
		}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})
		domain := models.NewDomain("Example.COM ", 0)

		outcome := migrator.Migrate(context.Background(), domain)

		assert.Equal(t, "example.com", outcome.Domain)
		require.NotNil(t, outcome.HasDNS)
		assert.True(t, *outcome.HasDNS)
		require.NotNil(t, outcome.RequiresMigration)
		assert.True(t, *outcome.RequiresMigration)
		assert.Equal(t, "/hostedzone/ZNEW", outcome.ZoneID)
		require.NotNil(t, outcome.RecordsApplied)
		assert.True(t, *outcome.RecordsApplied)
		require.NotNil(t, outcome.NameserversPushed)
		assert.True(t, *outcome.NameserversPushed)
		require.NotNil(t, outcome.SupportsEmail)
		assert.True(t, *outcome.SupportsEmail)
		assert.NoError(t, outcome.Err)

		assert.Equal(t, "/hostedzone/ZNEW", zones.appliedZoneID)
		require.Len(t, zones.applied, 2)
		assert.Equal(t, []string{"example.com"}, registrar.pushedDomains)
		assert.Equal(t, "/hostedzone/ZNEW", domain.ZoneID())
	})

	t.Run("no DNS presence", func(t *testing.T) {
		t.Parallel()

		registrar := &fakeRegistrar{}
		zones := &fakeZoneProvider{}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})

		outcome := migrator.Migrate(context.Background(),
			models.NewDomain("example.com", 0))

		require.NotNil(t, outcome.HasDNS)
		assert.False(t, *outcome.HasDNS)
		require.NotNil(t, outcome.RequiresMigration)
		assert.False(t, *outcome.RequiresMigration)
		require.NotNil(t, outcome.RecordsApplied)
		assert.False(t, *outcome.RecordsApplied)
		assert.Empty(t, outcome.ZoneID)
		assert.Equal(t, 0, zones.createCalls)
	})

	t.Run("parked large zone not eligible", func(t *testing.T) {
		t.Parallel()

		records := []models.SourceRecord{
			{Name: "@", Type: "A", Data: "Parked", TTL: 600},
		}
		for i := 0; i < 7; i++ {
			records = append(records, models.SourceRecord{
				Name: "@", Type: "NS", Data: "ns.registrar.example", TTL: 3600,
			})
		}
		registrar := &fakeRegistrar{records: records}
		zones := &fakeZoneProvider{}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})

		outcome := migrator.Migrate(context.Background(),
			models.NewDomain("example.com", 0))

		require.NotNil(t, outcome.RequiresMigration)
		assert.False(t, *outcome.RequiresMigration)
		assert.Equal(t, 0, zones.createCalls)
	})

	t.Run("zone creation failure stalls domain", func(t *testing.T) {
		t.Parallel()

		registrar := &fakeRegistrar{records: activeZoneRecords()}
		zones := &fakeZoneProvider{
			createErr: errors.New("denied"),
		}
		logger := &testLogger{}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), logger)

		outcome := migrator.Migrate(context.Background(),
			models.NewDomain("example.com", 0))

		assert.Empty(t, outcome.ZoneID)
		assert.Nil(t, outcome.RecordsApplied)
		assert.Nil(t, outcome.NameserversPushed)
		assert.NoError(t, outcome.Err)
		assert.NotEmpty(t, logger.errs)
	})

	t.Run("existing zone reused without creation", func(t *testing.T) {
		t.Parallel()

		registrar := &fakeRegistrar{records: activeZoneRecords(), pushSuccess: true}
		zones := &fakeZoneProvider{
			existingZoneID: "/hostedzone/ZEXISTING",
			nameservers:    []string{"ns-1.awsdns.org"},
		}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})

		outcome := migrator.Migrate(context.Background(),
			models.NewDomain("example.com", 0))

		assert.Equal(t, "/hostedzone/ZEXISTING", outcome.ZoneID)
		assert.Equal(t, 0, zones.createCalls)
	})

	t.Run("apply failure aborts this domain only", func(t *testing.T) {
		t.Parallel()

		registrar := &fakeRegistrar{records: activeZoneRecords()}
		zones := &fakeZoneProvider{
			createdZoneID: "/hostedzone/ZNEW",
			applyErr:      errors.New("invalid change batch"),
		}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})

		outcome := migrator.Migrate(context.Background(),
			models.NewDomain("example.com", 0))

		assert.Error(t, outcome.Err)
		assert.Nil(t, outcome.RecordsApplied)
		assert.Nil(t, outcome.NameserversPushed)
		assert.Empty(t, registrar.pushedDomains)
	})

	t.Run("empty nameservers skip cutover", func(t *testing.T) {
		t.Parallel()

		registrar := &fakeRegistrar{records: activeZoneRecords()}
		zones := &fakeZoneProvider{createdZoneID: "/hostedzone/ZNEW"}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})

		outcome := migrator.Migrate(context.Background(),
			models.NewDomain("example.com", 0))

		require.NotNil(t, outcome.RecordsApplied)
		assert.True(t, *outcome.RecordsApplied)
		assert.Nil(t, outcome.NameserversPushed)
		assert.Empty(t, registrar.pushedDomains)
	})

	t.Run("records fetched once per domain", func(t *testing.T) {
		t.Parallel()

		registrar := &fakeRegistrar{records: activeZoneRecords()}
		zones := &fakeZoneProvider{createdZoneID: "/hostedzone/ZNEW"}
		migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})
		domain := models.NewDomain("example.com", 0)

		_ = migrator.Migrate(context.Background(), domain)
		_ = migrator.Migrate(context.Background(), domain)

		assert.Equal(t, 1, registrar.getRecordsCalls)
	})
}

func Test_Migrator_MigrateAll(t *testing.T) {
	t.Parallel()

	// The first domain fails to apply its change batch, the second
	// domain must still be processed to completion.
	registrar := &fakeRegistrar{records: activeZoneRecords(), pushSuccess: true}
	zones := &fakeZoneProvider{
		createdZoneID: "/hostedzone/Z1",
		nameservers:   []string{"ns-1.awsdns.org"},
		applyErr:      errors.New("boom"),
		applyErrOnce:  true,
	}
	migrator := NewMigrator(registrar, zones, NewDecider(0, &testLogger{}), &testLogger{})
	domains := []*models.Domain{
		models.NewDomain("first.com", 0),
		models.NewDomain("second.com", 1),
	}

	outcomes := migrator.MigrateAll(context.Background(), domains)

	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.Equal(t, 0, outcomes[0].RowIndex)

	assert.NoError(t, outcomes[1].Err)
	assert.Equal(t, 1, outcomes[1].RowIndex)
	require.NotNil(t, outcomes[1].RecordsApplied)
	assert.True(t, *outcomes[1].RecordsApplied)
}
