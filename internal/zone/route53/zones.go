package route53

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/google/uuid"

	"dns-migrator/internal/errs"
)

// FindZoneID looks up the hosted zone whose registered name is
// exactly the domain in trailing-dot canonical form, and returns its
// id, or an empty string if no such zone exists. Lookup errors,
// including malformed domain names, are soft: logged and treated as
// the zone being absent.
func (a *Adapter) FindZoneID(ctx context.Context, domain string) (zoneID string) {
	var output *route53.ListHostedZonesByNameOutput
	err := a.gateway.Do(func() error {
		var listErr error
		output, listErr = a.api.ListHostedZonesByName(ctx,
			&route53.ListHostedZonesByNameInput{
				DNSName: aws.String(domain),
			})
		return listErr
	})
	if err != nil {
		a.logger.Error("listing hosted zones for " + domain +
			", treating zone as absent: " + err.Error())
		return ""
	}

	for _, zone := range output.HostedZones {
		if aws.ToString(zone.Name) == domain+"." {
			return aws.ToString(zone.Id)
		}
	}

	a.logger.Debug("no hosted zone found for " + domain)
	return ""
}

// CreateZone creates the hosted zone for the domain with a fresh
// idempotency token and returns its id. A zone already existing is
// success: the existing zone id is resolved through the same lookup
// path used for discovery. Any other error is returned so the caller
// can stall this domain's migration and move on to the next domain.
func (a *Adapter) CreateZone(ctx context.Context, domain string) (
	zoneID string, err error) {
	a.logger.Debug("creating hosted zone for " + domain)

	var output *route53.CreateHostedZoneOutput
	err = a.gateway.Do(func() error {
		var createErr error
		output, createErr = a.api.CreateHostedZone(ctx,
			&route53.CreateHostedZoneInput{
				Name:            aws.String(domain),
				CallerReference: aws.String(uuid.NewString()),
			})
		return createErr
	})

	var alreadyExists *types.HostedZoneAlreadyExists
	switch {
	case err == nil:
		zoneID = aws.ToString(output.HostedZone.Id)
		a.logger.Info("created hosted zone for " + domain + " with id " + zoneID)
		return zoneID, nil
	case errors.As(err, &alreadyExists):
		a.logger.Info("hosted zone for " + domain + " already exists")
		zoneID = a.FindZoneID(ctx, domain)
		if zoneID == "" {
			return "", fmt.Errorf("%w: %s: existing zone not found by name",
				errs.ErrZoneNotCreated, domain)
		}
		return zoneID, nil
	default:
		a.logger.Error("creating hosted zone for " + domain + ": " + err.Error())
		return "", fmt.Errorf("%w: %s: %w", errs.ErrZoneNotCreated, domain, err)
	}
}

// GetNameservers returns the nameservers assigned to the hosted
// zone's delegation set. Failures are soft: logged and an empty
// slice is returned, which skips the cutover step.
func (a *Adapter) GetNameservers(ctx context.Context, zoneID string) (
	nameservers []string) {
	var output *route53.GetHostedZoneOutput
	err := a.gateway.Do(func() error {
		var getErr error
		output, getErr = a.api.GetHostedZone(ctx,
			&route53.GetHostedZoneInput{
				Id: aws.String(zoneID),
			})
		return getErr
	})
	if err != nil {
		a.logger.Error("getting nameservers for zone " + zoneID + ": " + err.Error())
		return nil
	}
	if output.DelegationSet == nil {
		a.logger.Error("getting nameservers for zone " + zoneID +
			": no delegation set in response")
		return nil
	}
	return output.DelegationSet.NameServers
}
