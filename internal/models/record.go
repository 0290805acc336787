package models

// SourceRecord is one DNS resource record as returned by the
// GoDaddy records API. Name is relative to the zone, with "@"
// denoting the zone apex. Priority is only set for MX records.
type SourceRecord struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Data     string `json:"data"`
	TTL      uint32 `json:"ttl"`
	Priority uint16 `json:"priority,omitempty"`
}

// ChangeSetEntry is one (fully qualified name, type) record set
// to be upserted in the destination hosted zone. All source records
// sharing the same name and type collapse into a single entry, with
// their data values accumulated in encounter order.
type ChangeSetEntry struct {
	Name   string
	Type   string
	TTL    uint32
	Values []string
}
