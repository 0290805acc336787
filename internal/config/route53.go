package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Route53 struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

func (r *Route53) setDefaults() {
	r.Region = gosettings.DefaultComparable(r.Region, "us-east-1")
}

var (
	ErrAWSAccessKeyIDNotSet     = errors.New("AWS_ACCESS_KEY_ID is not set")
	ErrAWSSecretAccessKeyNotSet = errors.New("AWS_SECRET_ACCESS_KEY is not set")
)

func (r Route53) Validate() (err error) {
	switch {
	case r.AccessKeyID == "":
		return fmt.Errorf("%w", ErrAWSAccessKeyIDNotSet)
	case r.SecretAccessKey == "":
		return fmt.Errorf("%w", ErrAWSSecretAccessKeyNotSet)
	}
	return nil
}

func (r Route53) String() string {
	return r.toLinesNode().String()
}

func (r Route53) toLinesNode() *gotree.Node {
	node := gotree.New("Route 53")
	node.Appendf("Access key id: %s", obfuscate(r.AccessKeyID))
	node.Appendf("Secret access key: %s", obfuscate(r.SecretAccessKey))
	node.Appendf("Region: %s", r.Region)
	return node
}

func (r *Route53) read(re *reader.Reader) {
	r.AccessKeyID = re.String("AWS_ACCESS_KEY_ID", reader.ForceLowercase(false))
	r.SecretAccessKey = re.String("AWS_SECRET_ACCESS_KEY", reader.ForceLowercase(false))
	r.Region = re.String("AWS_REGION")
}
