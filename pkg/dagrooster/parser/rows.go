package parser

import (
	"fmt"

	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
)

// GroupedRows extracts one field per row label. A label may span a merged
// region; the time slot sits one column past the label's right edge and the
// name two columns past it.
func GroupedRows(wb workbook.Workbook, sheetName, group string, labels []string) ([]models.Field, error) {
	var fields []models.Field

	for _, label := range labels {
		cell, err := FindCellByText(wb, sheetName, label)
		if err != nil {
			return nil, err
		}
		if cell == nil {
			utils.Log.Debugf("row label %q not found in %s", label, sheetName)
			continue
		}

		endCol := cell.Col
		merge, err := FindMerge(wb, sheetName, cell.Row, cell.Col)
		if err != nil {
			return nil, err
		}
		if merge != nil {
			endCol = merge.C2
		}

		slot, err := cellText(wb, sheetName, cell.Row, endCol+1)
		if err != nil {
			return nil, err
		}
		pretty := label
		if slot != "" {
			pretty = label + " | " + slot
		}

		if f, ok := newField("zb", sheetName, group, pretty, cell.Row, endCol+2, fmt.Sprintf("%s|%s|%03d", group, label, cell.Row)); ok {
			fields = append(fields, f)
		}
	}

	return fields, nil
}
