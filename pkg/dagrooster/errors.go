package dagrooster

import (
	"errors"
	"fmt"

	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/store"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/template"
)

// ErrNoSheet indicates the template decoded but has no first sheet.
var ErrNoSheet = errors.New("no sheet found in template")

// ErrInvalidDate indicates an export date that is not YYYY-MM-DD.
var ErrInvalidDate = store.ErrInvalidDate

// ExtractionError represents an error while running one catalog entry.
type ExtractionError struct {
	SheetName string
	Label     string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Label, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure while producing an export.
type ExportError struct {
	Date string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Date, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// UserMessage reduces err to a short message fit for display next to the form.
func UserMessage(err error) string {
	var exportErr *ExportError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, template.ErrNotFound):
		return "Template not found. Supply template.xlsx and reload."
	case errors.Is(err, template.ErrInvalidFormat):
		return "Template is not a readable xlsx file."
	case errors.Is(err, ErrNoSheet):
		return "No sheet found in template."
	case errors.Is(err, ErrInvalidDate):
		return "Invalid date, expected YYYY-MM-DD."
	case errors.Is(err, store.ErrUnavailable):
		return "Saved values could not be read."
	case errors.As(err, &exportErr):
		return "Export failed."
	default:
		return "Loading the template failed."
	}
}
