package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dns-migrator/internal/models"
)

type testLogger struct {
	debug []string
	info  []string
	errs  []string
}

func (l *testLogger) Debug(s string) { l.debug = append(l.debug, s) }
func (l *testLogger) Info(s string)  { l.info = append(l.info, s) }
func (l *testLogger) Error(s string) { l.errs = append(l.errs, s) }

func parkedApexRecord() models.SourceRecord {
	return models.SourceRecord{Name: "@", Type: "A", Data: "Parked", TTL: 600}
}

func boilerplateRecords(n int) (records []models.SourceRecord) {
	for i := 0; i < n; i++ {
		records = append(records, models.SourceRecord{
			Name: "@", Type: "NS", Data: "ns.registrar.example", TTL: 3600,
		})
	}
	return records
}

func Test_Decider_HasDNSPresence(t *testing.T) {
	t.Parallel()

	decider := NewDecider(0, &testLogger{})

	assert.False(t, decider.HasDNSPresence("example.com", nil))
	assert.False(t, decider.HasDNSPresence("example.com", []models.SourceRecord{}))
	assert.True(t, decider.HasDNSPresence("example.com", boilerplateRecords(1)))
}

func Test_Decider_RequiresMigration(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		records  []models.SourceRecord
		required bool
	}{
		"no records": {
			records:  nil,
			required: false,
		},
		"parked with more than threshold records": {
			records:  append(boilerplateRecords(7), parkedApexRecord()),
			required: false,
		},
		"parked with threshold records": {
			records:  append(boilerplateRecords(5), parkedApexRecord()),
			required: true,
		},
		"not parked with many records": {
			records:  boilerplateRecords(10),
			required: true,
		},
		"not parked with few records": {
			records: []models.SourceRecord{
				{Name: "@", Type: "A", Data: "9.9.9.9", TTL: 600},
			},
			required: true,
		},
		"apex A record not parked": {
			records: append(boilerplateRecords(7), models.SourceRecord{
				Name: "@", Type: "A", Data: "1.2.3.4", TTL: 600,
			}),
			required: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			decider := NewDecider(0, &testLogger{})

			required := decider.RequiresMigration("example.com", testCase.records)

			assert.Equal(t, testCase.required, required)
		})
	}
}

func Test_Decider_RequiresMigration_customThreshold(t *testing.T) {
	t.Parallel()

	decider := NewDecider(2, &testLogger{})
	records := append(boilerplateRecords(3), parkedApexRecord())

	assert.False(t, decider.RequiresMigration("example.com", records))

	records = append(boilerplateRecords(1), parkedApexRecord())
	assert.True(t, decider.RequiresMigration("example.com", records))
}

func Test_HasMXRecords(t *testing.T) {
	t.Parallel()

	assert.False(t, HasMXRecords(nil))
	assert.False(t, HasMXRecords(boilerplateRecords(3)))
	assert.True(t, HasMXRecords([]models.SourceRecord{
		{Name: "@", Type: "MX", Data: "mail.example.com", TTL: 3600, Priority: 10},
	}))
}
