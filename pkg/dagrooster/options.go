// Package dagrooster extracts the writable fields of the roster template and
// exports filled copies of it.
package dagrooster

import (
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/catalog"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/parser"
	"golang.org/x/text/language"
)

// DefaultLocale orders sort keys the way the template's users read them.
const DefaultLocale = "nl"

// Options configures extraction behavior.
type Options struct {
	// Catalog lists the labels to search for. If nil, catalog.Default() is used.
	Catalog *catalog.Catalog
	// Block holds the two-column scanning limits. Zero fields take the defaults.
	Block parser.BlockParams
	// Locale is the BCP 47 tag used to collate sort keys. Empty means DefaultLocale.
	Locale string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Catalog: catalog.Default(),
		Block:   parser.DefaultBlockParams(),
		Locale:  DefaultLocale,
	}
}

func (o Options) catalog() *catalog.Catalog {
	if o.Catalog != nil {
		return o.Catalog
	}
	return catalog.Default()
}

func (o Options) blockParams() parser.BlockParams {
	p := o.Block
	d := parser.DefaultBlockParams()
	if p.MaxRows <= 0 {
		p.MaxRows = d.MaxRows
	}
	if p.EmptyStreak <= 0 {
		p.EmptyStreak = d.EmptyStreak
	}
	return p
}

func (o Options) language() language.Tag {
	if o.Locale == "" {
		return language.Dutch
	}
	tag, err := language.Parse(o.Locale)
	if err != nil {
		return language.Dutch
	}
	return tag
}

func (o Options) dateLabel() string {
	if l := o.catalog().DateLabel; l != "" {
		return l
	}
	return catalog.DefaultDateLabel
}
