package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	// DomainList is the input CSV file with one row per domain.
	DomainList *string
	// Output is the CSV file the migration report is written to.
	Output *string
}

func (p *Paths) setDefaults() {
	p.DomainList = gosettings.DefaultPointer(p.DomainList, "domains.csv")
	p.Output = gosettings.DefaultPointer(p.Output, "output.csv")
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Domain list file: %s", *p.DomainList)
	node.Appendf("Output file: %s", *p.Output)
	return node
}

func (p *Paths) read(r *reader.Reader) {
	p.DomainList = r.Get("DOMAIN_LIST_FILE", reader.ForceLowercase(false))
	p.Output = r.Get("OUTPUT_FILE", reader.ForceLowercase(false))
}
