// Package config reads, defaults and validates all program settings
// from environment variables.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	GoDaddy  GoDaddy
	Route53  Route53
	Migrator Migrator
	Paths    Paths
	Logger   Logger
	Health   Health
}

func (c *Config) SetDefaults() {
	c.GoDaddy.setDefaults()
	c.Route53.setDefaults()
	c.Migrator.setDefaults()
	c.Paths.setDefaults()
	c.Logger.setDefaults()
	c.Health.SetDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"godaddy":  &c.GoDaddy,
		"route53":  &c.Route53,
		"migrator": &c.Migrator,
		"paths":    &c.Paths,
		"logger":   &c.Logger,
		"health":   &c.Health,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.GoDaddy.toLinesNode())
	node.AppendNode(c.Route53.toLinesNode())
	node.AppendNode(c.Migrator.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	c.GoDaddy.read(reader)
	c.Route53.read(reader)

	err = c.Migrator.read(reader)
	if err != nil {
		return fmt.Errorf("reading migrator settings: %w", err)
	}

	c.Paths.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Health.Read(reader)

	return nil
}
