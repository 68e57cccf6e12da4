package dagrooster

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/catalog"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/parser"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
	"golang.org/x/text/collate"
)

// Extract computes the field catalog of the first sheet of wb.
//
// Catalog entries run in their declared order. Labels absent from the sheet
// contribute no fields; a workbook without a first sheet fails with ErrNoSheet.
// The result is sorted by sort key and keeps only the first field of each
// sheet address.
func Extract(wb workbook.Workbook, opts Options) (*models.FieldCatalog, error) {
	sheets := wb.SheetNames()
	if len(sheets) == 0 || sheets[0] == "" {
		return nil, ErrNoSheet
	}
	sheetName := sheets[0]

	var fields []models.Field
	for _, entry := range opts.catalog().Entries {
		found, err := runEntry(wb, sheetName, entry, opts.blockParams())
		if err != nil {
			return nil, &ExtractionError{SheetName: sheetName, Label: entryName(entry), Err: err}
		}
		fields = append(fields, found...)
	}

	col := collate.New(opts.language())
	sort.SliceStable(fields, func(i, j int) bool {
		return col.CompareString(fields[i].SortKey, fields[j].SortKey) < 0
	})

	seen := make(map[string]bool, len(fields))
	unique := fields[:0]
	for _, f := range fields {
		if seen[f.Key()] {
			utils.Log.Debugf("dropping duplicate field %q at %s", f.Label, f.Key())
			continue
		}
		seen[f.Key()] = true
		unique = append(unique, f)
	}

	utils.Log.Debugf("extracted %d fields from %s", len(unique), sheetName)
	return &models.FieldCatalog{SheetName: sheetName, Fields: unique}, nil
}

// ExtractFile opens the template at path and extracts its field catalog.
func ExtractFile(path string, opts Options) (*models.FieldCatalog, error) {
	wb, err := workbook.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	fc, err := Extract(wb, opts)
	if err != nil {
		return nil, err
	}
	fc.BookName = filepath.Base(path)
	return fc, nil
}

func runEntry(wb workbook.Workbook, sheetName string, e catalog.Entry, params parser.BlockParams) ([]models.Field, error) {
	switch e.Strategy {
	case catalog.TwoColumn:
		return parser.TwoColumnBlock(wb, sheetName, e.Label, params)
	case catalog.KeyValue:
		return parser.KeyValue(wb, sheetName, e.Label, e.Group)
	case catalog.GroupedRows:
		return parser.GroupedRows(wb, sheetName, e.Group, e.Labels)
	default:
		return nil, fmt.Errorf("unknown strategy %q", e.Strategy)
	}
}

func entryName(e catalog.Entry) string {
	if e.Label != "" {
		return e.Label
	}
	return e.Group
}
