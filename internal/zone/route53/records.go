package route53

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"dns-migrator/internal/errs"
	"dns-migrator/internal/models"
)

// ApplyChangeBatch upserts every change set entry in the hosted
// zone in a single batch call: each record set is created if absent
// or replaced if present, never deleted. Unlike the other adapter
// operations, a failure here is returned to the caller: it aborts
// the remaining migration steps of the current domain.
func (a *Adapter) ApplyChangeBatch(ctx context.Context, zoneID string,
	entries []models.ChangeSetEntry) (err error) {
	if zoneID == "" {
		return fmt.Errorf("%w", errs.ErrZoneIDNotSet)
	}

	changes := make([]types.Change, 0, len(entries))
	for _, entry := range entries {
		resourceRecords := make([]types.ResourceRecord, 0, len(entry.Values))
		for _, value := range entry.Values {
			resourceRecords = append(resourceRecords, types.ResourceRecord{
				Value: aws.String(value),
			})
		}
		changes = append(changes, types.Change{
			Action: types.ChangeActionUpsert,
			ResourceRecordSet: &types.ResourceRecordSet{
				Name:            aws.String(entry.Name),
				Type:            types.RRType(entry.Type),
				TTL:             aws.Int64(int64(entry.TTL)),
				ResourceRecords: resourceRecords,
			},
		})
	}

	a.logger.Debug("applying " + strconv.Itoa(len(changes)) +
		" record set changes to zone " + zoneID)

	input := &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &types.ChangeBatch{
			Changes: changes,
			Comment: aws.String("Records migrated by dns-migrator"),
		},
	}

	err = a.gateway.Do(func() error {
		_, changeErr := a.api.ChangeResourceRecordSets(ctx, input)
		return changeErr
	})
	if err != nil {
		return fmt.Errorf("changing resource record sets for zone %s: %w",
			zoneID, err)
	}

	return nil
}
