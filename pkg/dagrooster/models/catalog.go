package models

// FieldCatalog represents the ordered, de-duplicated fields found in one template.
type FieldCatalog struct {
	// BookName is the template file name (no path), if known.
	BookName string `json:"book_name,omitempty"`
	// SheetName is the sheet the fields were extracted from.
	SheetName string `json:"sheet_name"`
	// Fields is the display-ordered field list.
	Fields []Field `json:"fields"`
}

// FieldByLabel returns the first field with the given label.
func (c *FieldCatalog) FieldByLabel(label string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

// Groups returns the fields bucketed by group, in order of first appearance.
func (c *FieldCatalog) Groups() []FieldGroup {
	var groups []FieldGroup
	index := make(map[string]int)
	for _, f := range c.Fields {
		i, ok := index[f.Group]
		if !ok {
			i = len(groups)
			index[f.Group] = i
			groups = append(groups, FieldGroup{Name: f.Group})
		}
		groups[i].Fields = append(groups[i].Fields, f)
	}
	return groups
}

// FieldGroup is a named run of fields shown together.
type FieldGroup struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}
