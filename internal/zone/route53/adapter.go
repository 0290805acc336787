// Package route53 accesses Amazon Route 53 as the destination DNS
// provider: it resolves or creates the hosted zone for a domain,
// reads the zone's assigned nameservers and upserts record change
// batches.
package route53

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

type API interface {
	ListHostedZonesByName(ctx context.Context,
		input *route53.ListHostedZonesByNameInput,
		optFns ...func(*route53.Options)) (
		*route53.ListHostedZonesByNameOutput, error)
	CreateHostedZone(ctx context.Context,
		input *route53.CreateHostedZoneInput,
		optFns ...func(*route53.Options)) (
		*route53.CreateHostedZoneOutput, error)
	GetHostedZone(ctx context.Context,
		input *route53.GetHostedZoneInput,
		optFns ...func(*route53.Options)) (
		*route53.GetHostedZoneOutput, error)
	ChangeResourceRecordSets(ctx context.Context,
		input *route53.ChangeResourceRecordSetsInput,
		optFns ...func(*route53.Options)) (
		*route53.ChangeResourceRecordSetsOutput, error)
}

type Gateway interface {
	Do(call func() error) error
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Error(s string)
}

type Adapter struct {
	api     API
	gateway Gateway
	logger  Logger
}

func New(api API, gateway Gateway, logger Logger) *Adapter {
	return &Adapter{
		api:     api,
		gateway: gateway,
		logger:  logger,
	}
}

// NewAPI builds the real Route 53 SDK client from static credentials.
func NewAPI(ctx context.Context, accessKeyID, secretAccessKey,
	region string) (api *route53.Client, err error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}
	return route53.NewFromConfig(cfg), nil
}
