// Package workbook isolates the extractor and exporter from the spreadsheet codec.
package workbook

import (
	"fmt"
	"io"

	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/cellref"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/xuri/excelize/v2"
)

// Workbook is the minimal set of spreadsheet operations field extraction and
// export rely on.
type Workbook interface {
	// SheetNames lists the sheets in workbook order.
	SheetNames() []string
	// CellValue returns the raw text stored in a cell, "" when the cell is
	// missing or empty. Cells covered by a merge, other than its top-left
	// cell, read as empty.
	CellValue(sheet, addr string) (string, error)
	// CellAt is CellValue addressed by zero-based row and column.
	CellAt(sheet string, row, col int) (string, error)
	// Addresses lists the occupied cells of a sheet in row-major order.
	Addresses(sheet string) ([]string, error)
	// MergeRanges lists the merged regions of a sheet.
	MergeRanges(sheet string) ([]models.MergeRange, error)
	// SetString writes value as a text cell, keeping the cell's style.
	SetString(sheet, addr, value string) error
	// Encode writes the complete package, styles included.
	Encode(w io.Writer) error
	Close() error
}

var rawValues = excelize.Options{RawCellValue: true}

// Excel implements Workbook on top of excelize.
type Excel struct {
	f *excelize.File

	// grid caches the raw rows of each sheet; SetString drops the sheet's entry.
	grid map[string][][]string
}

// Open decodes an xlsx package from r.
func Open(r io.Reader) (*Excel, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return &Excel{f: f}, nil
}

// OpenFile decodes the xlsx package at path.
func OpenFile(path string) (*Excel, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Excel{f: f}, nil
}

// Wrap adapts an already opened excelize file.
func Wrap(f *excelize.File) *Excel {
	return &Excel{f: f}
}

// File exposes the underlying excelize file.
func (x *Excel) File() *excelize.File {
	return x.f
}

func (x *Excel) SheetNames() []string {
	return x.f.GetSheetList()
}

func (x *Excel) CellValue(sheet, addr string) (string, error) {
	row, col, err := cellref.Decode(addr)
	if err != nil {
		return "", err
	}
	return x.CellAt(sheet, row, col)
}

// CellAt reads from the sheet's row grid rather than GetCellValue, which
// resolves merged cells to the merge's top-left value.
func (x *Excel) CellAt(sheet string, row, col int) (string, error) {
	if row < 0 || col < 0 {
		return "", fmt.Errorf("cell (%d, %d) out of range", row, col)
	}
	rows, err := x.rows(sheet)
	if err != nil {
		return "", err
	}
	if row >= len(rows) || col >= len(rows[row]) {
		return "", nil
	}
	return rows[row][col], nil
}

func (x *Excel) Addresses(sheet string) ([]string, error) {
	rows, err := x.rows(sheet)
	if err != nil {
		return nil, err
	}

	var result []string
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			addr, err := cellref.Encode(rowIdx, colIdx)
			if err != nil {
				return nil, err
			}
			result = append(result, addr)
		}
	}
	return result, nil
}

func (x *Excel) rows(sheet string) ([][]string, error) {
	if rows, ok := x.grid[sheet]; ok {
		return rows, nil
	}
	rows, err := x.f.GetRows(sheet, rawValues)
	if err != nil {
		return nil, err
	}
	if x.grid == nil {
		x.grid = make(map[string][][]string)
	}
	x.grid[sheet] = rows
	return rows, nil
}

func (x *Excel) MergeRanges(sheet string) ([]models.MergeRange, error) {
	merges, err := x.f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	result := make([]models.MergeRange, 0, len(merges))
	for _, mc := range merges {
		m, err := cellref.ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merge range: %w", err)
		}
		result = append(result, m)
	}
	return result, nil
}

func (x *Excel) SetString(sheet, addr, value string) error {
	delete(x.grid, sheet)
	return x.f.SetCellStr(sheet, addr, value)
}

func (x *Excel) Encode(w io.Writer) error {
	return x.f.Write(w)
}

func (x *Excel) Close() error {
	return x.f.Close()
}
