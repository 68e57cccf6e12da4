package dagrooster

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/store"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/template"
	"github.com/xuri/excelize/v2"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-03-15", "15-3-2024"},
		{"2024-01-02", "2-1-2024"},
		{"2023-12-31", "31-12-2023"},
	}
	for _, tt := range tests {
		got, err := FormatDate(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FormatDate("15-03-2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExport(t *testing.T) {
	path := writeTemplate(t)
	values := map[string]string{"G4": "Jan", "B8": "Piet", "E10": "Klaas", "Z99": "ignored"}

	res, err := Export(context.Background(), template.NewLoader(path), "2024-03-15", values, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Dagrooster_2024-03-15.xlsx", res.Filename)
	assert.Len(t, res.Catalog.Fields, 7)

	out, err := excelize.OpenReader(bytes.NewReader(res.Data))
	require.NoError(t, err)
	defer out.Close()

	want := map[string]string{
		"B1":  "15-3-2024",
		"G4":  "Jan",
		"B8":  "Piet",
		"E10": "Klaas",
		"G5":  "",
		"J4":  "",
		"D12": "",
		"Z99": "",
		"A1":  "DATUM:",
		"F3":  "Breda 2",
		"D10": "9 Con",
		"L1":  "Legenda",
	}
	for addr, v := range want {
		got, err := out.GetCellValue("Sheet1", addr)
		require.NoError(t, err)
		assert.Equal(t, v, got, addr)
	}

	formula, err := out.GetCellFormula("Sheet1", "L2")
	require.NoError(t, err)
	assert.Equal(t, "1+1", formula)

	src, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer src.Close()
	for _, addr := range []string{"L1", "G4", "A1"} {
		srcStyle, err := src.GetCellStyle("Sheet1", addr)
		require.NoError(t, err)
		outStyle, err := out.GetCellStyle("Sheet1", addr)
		require.NoError(t, err)
		assert.Equal(t, srcStyle, outStyle, addr)
	}
	style, err := out.GetStyle(mustStyle(t, out, "L1"))
	require.NoError(t, err)
	assert.True(t, style.Font != nil && style.Font.Bold)

	merges, err := out.GetMergeCells("Sheet1")
	require.NoError(t, err)
	assert.Len(t, merges, 2)
}

func mustStyle(t *testing.T, f *excelize.File, addr string) int {
	t.Helper()
	id, err := f.GetCellStyle("Sheet1", addr)
	require.NoError(t, err)
	return id
}

func TestExportReextracts(t *testing.T) {
	path := writeTemplate(t)
	res, err := Export(context.Background(), template.NewLoader(path), "2024-03-15", nil, DefaultOptions())
	require.NoError(t, err)

	// the exported file still yields the same targets
	outPath := filepath.Join(t.TempDir(), res.Filename)
	f, err := excelize.OpenReader(bytes.NewReader(res.Data))
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(outPath))
	require.NoError(t, f.Close())

	fc, err := ExtractFile(outPath, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, addresses(res.Catalog.Fields), addresses(fc.Fields))
}

func TestExportErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Export(ctx, template.NewLoader(filepath.Join(t.TempDir(), "template.xlsx")), "2024-03-15", nil, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, template.ErrNotFound)
	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, "2024-03-15", exportErr.Date)
	assert.Equal(t, "Template not found. Supply template.xlsx and reload.", UserMessage(err))

	_, err = Export(ctx, template.NewLoader(writeTemplate(t)), "15-3-2024", nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, "Invalid date, expected YYYY-MM-DD.", UserMessage(err))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "No sheet found in template.", UserMessage(ErrNoSheet))
	assert.Equal(t, "Template is not a readable xlsx file.", UserMessage(&template.Error{Kind: template.ErrInvalidFormat, Err: errors.New("zip")}))
	assert.Equal(t, "Export failed.", UserMessage(&ExportError{Err: errors.New("disk full")}))
	assert.Equal(t, "Saved values could not be read.", UserMessage(&ExportError{Err: store.ErrUnavailable}))
	assert.Equal(t, "Loading the template failed.", UserMessage(errors.New("boom")))
}
