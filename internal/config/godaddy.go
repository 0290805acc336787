package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type GoDaddy struct {
	APIKey    string
	APISecret string
}

func (g *GoDaddy) setDefaults() {}

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9]{8,14}\_[A-Za-z0-9]{21,22}$`)

var (
	ErrGoDaddyKeyNotValid  = errors.New("GODADDY_API_KEY is not valid")
	ErrGoDaddySecretNotSet = errors.New("GODADDY_API_SECRET is not set")
)

func (g GoDaddy) Validate() (err error) {
	switch {
	case !keyRegex.MatchString(g.APIKey):
		return fmt.Errorf("%w", ErrGoDaddyKeyNotValid)
	case g.APISecret == "":
		return fmt.Errorf("%w", ErrGoDaddySecretNotSet)
	}
	return nil
}

func (g GoDaddy) String() string {
	return g.toLinesNode().String()
}

func (g GoDaddy) toLinesNode() *gotree.Node {
	node := gotree.New("GoDaddy")
	node.Appendf("API key: %s", obfuscate(g.APIKey))
	node.Appendf("API secret: %s", obfuscate(g.APISecret))
	return node
}

func (g *GoDaddy) read(r *reader.Reader) {
	g.APIKey = r.String("GODADDY_API_KEY", reader.ForceLowercase(false))
	g.APISecret = r.String("GODADDY_API_SECRET", reader.ForceLowercase(false))
}
