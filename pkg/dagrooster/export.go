package dagrooster

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/store"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
)

// ContentType is the media type of exported files.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Loader opens a fresh template workbook. template.Loader implements it.
type Loader interface {
	Load(ctx context.Context) (workbook.Workbook, error)
}

// ExportResult is a filled template ready for download.
type ExportResult struct {
	Filename string
	Data     []byte
	// Catalog is the field catalog the values were written through.
	Catalog *models.FieldCatalog
}

// ExportFilename names the export of date.
func ExportFilename(date string) string {
	return "Dagrooster_" + date + ".xlsx"
}

// FormatDate renders an ISO date as day-month-year without zero padding.
func FormatDate(date string) (string, error) {
	t, err := time.Parse(store.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, date)
	}
	return t.Format("2-1-2006"), nil
}

// Export loads a fresh copy of the template, writes the date and every field
// value into their target cells and encodes the result. Cells that are not
// fields keep their content and formatting.
func Export(ctx context.Context, loader Loader, date string, values map[string]string, opts Options) (*ExportResult, error) {
	res, err := export(ctx, loader, date, values, opts)
	if err != nil {
		return nil, &ExportError{Date: date, Err: err}
	}
	utils.Log.Infof("exported %s (%d fields, %d bytes)", res.Filename, len(res.Catalog.Fields), len(res.Data))
	return res, nil
}

func export(ctx context.Context, loader Loader, date string, values map[string]string, opts Options) (*ExportResult, error) {
	dateText, err := FormatDate(date)
	if err != nil {
		return nil, err
	}

	wb, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	fc, err := Extract(wb, opts)
	if err != nil {
		return nil, err
	}

	dateLabel := opts.dateLabel()
	if f, ok := fc.FieldByLabel(dateLabel); ok {
		if err := wb.SetString(f.SheetName, f.Address, dateText); err != nil {
			return nil, fmt.Errorf("write date to %s: %w", f.Address, err)
		}
	}

	for _, f := range fc.Fields {
		if f.Label == dateLabel {
			continue
		}
		if err := wb.SetString(f.SheetName, f.Address, values[f.Address]); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Address, err)
		}
	}

	var buf bytes.Buffer
	if err := wb.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &ExportResult{
		Filename: ExportFilename(date),
		Data:     buf.Bytes(),
		Catalog:  fc,
	}, nil
}
