// Package parser locates template fields by scanning a sheet's cells.
package parser

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/cellref"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
)

// CellMatch is a cell found by its text.
type CellMatch struct {
	Address string
	Row     int
	Col     int
}

// FindCellByText returns the first occupied cell, in row-major order, whose
// trimmed text equals the trimmed target. It returns nil when no cell matches.
func FindCellByText(wb workbook.Workbook, sheetName, text string) (*CellMatch, error) {
	target := trim(text)

	addrs, err := wb.Addresses(sheetName)
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		if !cellref.IsAddress(addr) {
			continue
		}
		v, err := wb.CellValue(sheetName, addr)
		if err != nil {
			return nil, err
		}
		if trim(v) != target {
			continue
		}
		r, c, err := cellref.Decode(addr)
		if err != nil {
			return nil, err
		}
		return &CellMatch{Address: addr, Row: r, Col: c}, nil
	}
	return nil, nil
}

// cellText reads the trimmed text at (row, col).
func cellText(wb workbook.Workbook, sheetName string, row, col int) (string, error) {
	v, err := wb.CellAt(sheetName, row, col)
	if err != nil {
		return "", err
	}
	return trim(v), nil
}

// trim strips surrounding white space and byte order marks.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// newField builds a field targeting (row, col). It reports false when the
// target lies outside the sheet.
func newField(prefix, sheetName, group, label string, row, col int, sortKey string) (models.Field, bool) {
	addr, err := cellref.Encode(row, col)
	if err != nil {
		utils.Log.Debugf("skipping %q in %s: %v", label, sheetName, err)
		return models.Field{}, false
	}
	return models.Field{
		ID:        prefix + "_" + uuid.NewString(),
		Group:     group,
		Label:     label,
		Address:   addr,
		Row:       row,
		Col:       col,
		SheetName: sheetName,
		SortKey:   sortKey,
	}, true
}
