package dagrooster

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/xuri/excelize/v2"
)

// writeTemplate saves a small roster template and returns its path.
//
//	A1  DATUM:            F3 Breda 2   I3 Oss 3    L1 Legenda (bold)
//	A8  Vroeg Veer        F4 6         I4 6 | oud  L2 =1+1
//	A10:C10 Roosendaal, D10 9 Con      F5 7 TR
//	A12:B12 Internationaal
func writeTemplate(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	s := "Sheet1"

	cells := map[string]string{
		"A1":  "DATUM:",
		"A8":  "Vroeg Veer",
		"A10": "Roosendaal",
		"D10": "9 Con",
		"A12": "Internationaal",
		"F3":  "Breda 2",
		"F4":  "6",
		"F5":  "7 TR",
		"I3":  "Oss 3",
		"I4":  "6",
		"J4":  "oud",
		"L1":  "Legenda",
	}
	for addr, v := range cells {
		require.NoError(t, f.SetCellValue(s, addr, v))
	}
	require.NoError(t, f.MergeCell(s, "A10", "C10"))
	require.NoError(t, f.MergeCell(s, "A12", "B12"))
	require.NoError(t, f.SetCellFormula(s, "L2", "1+1"))

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(s, "L1", "L1", bold))
	fill, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(s, "G4", "G4", fill))

	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// fakeWorkbook is a Workbook without sheets.
type fakeWorkbook struct {
	sheets []string
}

func (w *fakeWorkbook) SheetNames() []string { return w.sheets }
func (w *fakeWorkbook) CellValue(string, string) (string, error) { return "", nil }
func (w *fakeWorkbook) CellAt(string, int, int) (string, error) { return "", nil }
func (w *fakeWorkbook) Addresses(string) ([]string, error) { return nil, nil }
func (w *fakeWorkbook) MergeRanges(string) ([]models.MergeRange, error) { return nil, nil }
func (w *fakeWorkbook) SetString(string, string, string) error { return nil }
func (w *fakeWorkbook) Encode(io.Writer) error { return nil }
func (w *fakeWorkbook) Close() error { return nil }
