package parser

import (
	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
)

// KeyValue extracts the single field to the right of label.
func KeyValue(wb workbook.Workbook, sheetName, label, group string) ([]models.Field, error) {
	cell, err := FindCellByText(wb, sheetName, label)
	if err != nil {
		return nil, err
	}
	if cell == nil {
		utils.Log.Debugf("label %q not found in %s", label, sheetName)
		return nil, nil
	}

	f, ok := newField("kv", sheetName, group, label, cell.Row, cell.Col+1, group+"|"+label)
	if !ok {
		return nil, nil
	}
	return []models.Field{f}, nil
}
