package parser

import (
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
)

// FindMerge returns the merged region containing (row, col), or nil.
func FindMerge(wb workbook.Workbook, sheetName string, row, col int) (*models.MergeRange, error) {
	merges, err := wb.MergeRanges(sheetName)
	if err != nil {
		return nil, err
	}
	for i := range merges {
		if merges[i].Contains(row, col) {
			return &merges[i], nil
		}
	}
	return nil, nil
}
