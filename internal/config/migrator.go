package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Migrator struct {
	// RatePeriod is the minimum spacing between consecutive call
	// starts to one backend. Each backend gets its own pacing
	// clock with this same period.
	RatePeriod time.Duration
	// TrivialZoneSize is the record count at or below which a
	// parked domain still qualifies for migration.
	TrivialZoneSize *int
}

func (m *Migrator) setDefaults() {
	const defaultRatePeriod = time.Second
	m.RatePeriod = gosettings.DefaultComparable(m.RatePeriod, defaultRatePeriod)
	const defaultTrivialZoneSize = 6
	m.TrivialZoneSize = gosettings.DefaultPointer(m.TrivialZoneSize, defaultTrivialZoneSize)
}

var (
	ErrRatePeriodNegative      = errors.New("rate limit period cannot be negative")
	ErrTrivialZoneSizeNegative = errors.New("trivial zone size cannot be negative")
)

func (m Migrator) Validate() (err error) {
	switch {
	case m.RatePeriod < 0:
		return fmt.Errorf("%w: %s", ErrRatePeriodNegative, m.RatePeriod)
	case *m.TrivialZoneSize < 0:
		return fmt.Errorf("%w: %d", ErrTrivialZoneSizeNegative, *m.TrivialZoneSize)
	}
	return nil
}

func (m Migrator) String() string {
	return m.toLinesNode().String()
}

func (m Migrator) toLinesNode() *gotree.Node {
	node := gotree.New("Migrator")
	node.Appendf("Rate limit period: %s", m.RatePeriod)
	node.Appendf("Trivial zone size: %d", *m.TrivialZoneSize)
	return node
}

func (m *Migrator) read(reader *reader.Reader) (err error) {
	m.RatePeriod, err = reader.Duration("RATE_LIMIT_PERIOD")
	if err != nil {
		return err
	}

	m.TrivialZoneSize, err = reader.IntPtr("MIGRATOR_TRIVIAL_ZONE_SIZE")
	return err
}
