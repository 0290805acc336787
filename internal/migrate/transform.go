package migrate

import (
	"strconv"
	"strings"

	"dns-migrator/internal/models"
)

const (
	// domainConnectName is a registrar-internal verification CNAME
	// with no meaning at the destination provider.
	domainConnectName = "_domainconnect"
	// websiteBuilderPlaceholder is the data value the registrar puts
	// on A records served by its website builder product.
	websiteBuilderPlaceholder = "WebsiteBuilder Site"
	// websiteBuilderIP is the registrar's real website builder
	// serving address, substituted for the placeholder above.
	websiteBuilderIP = "76.223.105.230"

	srvDataFields = 4
)

type changeKey struct {
	name       string
	recordType string
}

// Transform converts the registrar's relative-name record list into
// the destination's FQDN-keyed, type-aggregated change set. Records
// sharing the same post-rewrite name and type collapse into one entry
// with all surviving data values in encounter order; the TTL of each
// entry comes from the first record seen for its key. Types are never
// rewritten, so no cross-type collision can occur.
func Transform(domain string, records []models.SourceRecord,
	logger Logger) (entries []models.ChangeSetEntry) {
	aggregated := make(map[changeKey]int, len(records))

	for _, record := range records {
		// The destination manages SOA and NS records itself.
		if record.Type == "SOA" || record.Type == "NS" {
			continue
		}
		// Parking placeholder, not real content.
		if record.Type == "A" && record.Data == parkedPlaceholder {
			continue
		}
		if record.Type == "CNAME" && record.Name == domainConnectName {
			continue
		}

		// The registrar's apex-self-reference shorthand has no
		// equivalent at the destination.
		if record.Type == "CNAME" && record.Data == apexName {
			record.Data = domain
		}

		if record.Type == "A" && record.Data == websiteBuilderPlaceholder {
			record.Data = websiteBuilderIP
		}

		// The destination has no apex shorthand and requires every
		// record name to be fully qualified.
		if record.Name == apexName {
			record.Name = domain
		} else {
			record.Name = record.Name + "." + domain
		}

		// The destination carries the MX priority inside the value.
		if record.Type == "MX" {
			record.Data = strconv.Itoa(int(record.Priority)) + " " + record.Data
		}

		if record.Type == "TXT" {
			record.Data = `"` + record.Data + `"`
		}

		if record.Type == "SRV" &&
			len(strings.Fields(record.Data)) != srvDataFields {
			logger.Error("invalid SRV record data for " +
				record.Name + ": " + record.Data)
			continue
		}

		key := changeKey{name: record.Name, recordType: record.Type}
		index, ok := aggregated[key]
		if !ok {
			index = len(entries)
			aggregated[key] = index
			entries = append(entries, models.ChangeSetEntry{
				Name: record.Name,
				Type: record.Type,
				TTL:  record.TTL,
			})
		}
		entries[index].Values = append(entries[index].Values, record.Data)
	}

	return entries
}
