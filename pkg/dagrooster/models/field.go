// Package models defines data structures for template field extraction.
package models

// Field represents a located, writable target cell in the template.
type Field struct {
	// ID is an opaque identifier assigned at extraction time (not persisted).
	ID string `json:"id"`
	// Group is the display category the field belongs to (e.g., a location name).
	Group string `json:"group"`
	// Label is the human readable description shown next to the input.
	Label string `json:"label"`
	// Address is the cell address where the value must be written (e.g., "B5").
	Address string `json:"address"`
	// Row is the zero-based row index of Address.
	Row int `json:"row"`
	// Col is the zero-based column index of Address.
	Col int `json:"col"`
	// SheetName is the sheet the address belongs to.
	SheetName string `json:"sheet_name"`
	// SortKey orders fields for display; compared with a locale-aware collator.
	SortKey string `json:"sort_key"`
}

// Key returns the sheet-qualified address used for de-duplication.
func (f Field) Key() string {
	return f.SheetName + "!" + f.Address
}
