// Package catalog describes which labels the extractor searches for and how
// each label locates its target cells.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Strategy names the matching strategy applied to a catalog entry.
type Strategy string

const (
	// TwoColumn scans the rows below a header: label in the header column, value to its right.
	TwoColumn Strategy = "two_column"
	// KeyValue targets the cell right of a single label.
	KeyValue Strategy = "key_value"
	// GroupedRows targets the name column after a (possibly merged) row label and its time slot.
	GroupedRows Strategy = "grouped_rows"
)

// DefaultDateLabel marks the field that receives the export date.
const DefaultDateLabel = "DATUM:"

// Entry is one declarative catalog line.
type Entry struct {
	Strategy Strategy `yaml:"strategy" json:"strategy"`
	// Label is the header text (TwoColumn) or the key label (KeyValue).
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	// Group is the display group for KeyValue and GroupedRows entries.
	Group string `yaml:"group,omitempty" json:"group,omitempty"`
	// Labels are the row labels of a GroupedRows entry, in order.
	Labels []string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

// Catalog is the ordered list of entries run against a template.
type Catalog struct {
	DateLabel string  `yaml:"date_label" json:"date_label"`
	Entries   []Entry `yaml:"entries" json:"entries"`
}

var twoColumnHeaders = []string{
	"Roosendaal 2",
	"Raamsdonksveer 2",
	"Rosmalen 3",
	"Eindhoven 1",
	"Duiven 4",
	"Breda 2",
	"Hulten 2",
	"Oss 3",
	"Boxmeer 3",
	"Ede 4",
	"Andelst 4",
}

var keyValueLabels = []string{
	DefaultDateLabel,
	"Vroeg Roosendaal",
	"Laat Roosendaal",
	"Vroeg Veer",
	"Laat Veer",
}

var heavyRecoveryLabels = []string{
	"Roosendaal",
	"Raamsdonksveer",
	"Breda",
	"Hulten",
	"Eindhoven",
	"Duiven",
	"Ede",
	"Internationaal",
}

// Default returns the catalog of the Dagrooster template: two-column blocks,
// then key-value labels, then the "Zware Berging" rows.
func Default() *Catalog {
	c := &Catalog{DateLabel: DefaultDateLabel}
	for _, h := range twoColumnHeaders {
		c.Entries = append(c.Entries, Entry{Strategy: TwoColumn, Label: h})
	}
	for _, l := range keyValueLabels {
		c.Entries = append(c.Entries, Entry{Strategy: KeyValue, Label: l, Group: "Algemeen"})
	}
	c.Entries = append(c.Entries, Entry{
		Strategy: GroupedRows,
		Group:    "Zware Berging",
		Labels:   append([]string(nil), heavyRecoveryLabels...),
	})
	return c
}

// Load reads a YAML catalog from path. An empty date_label falls back to DefaultDateLabel.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if c.DateLabel == "" {
		c.DateLabel = DefaultDateLabel
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every entry names a known strategy and carries its parameters.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return errors.New("catalog has no entries")
	}
	for i, e := range c.Entries {
		switch e.Strategy {
		case TwoColumn:
			if e.Label == "" {
				return fmt.Errorf("entry %d: two_column needs a label", i)
			}
		case KeyValue:
			if e.Label == "" || e.Group == "" {
				return fmt.Errorf("entry %d: key_value needs a label and a group", i)
			}
		case GroupedRows:
			if e.Group == "" || len(e.Labels) == 0 {
				return fmt.Errorf("entry %d: grouped_rows needs a group and labels", i)
			}
		default:
			return fmt.Errorf("entry %d: unknown strategy %q", i, e.Strategy)
		}
	}
	return nil
}
