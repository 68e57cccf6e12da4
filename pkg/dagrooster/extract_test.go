package dagrooster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/catalog"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/parser"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
	"github.com/xuri/excelize/v2"
)

func addresses(fields []models.Field) []string {
	var out []string
	for _, f := range fields {
		out = append(out, f.Address)
	}
	return out
}

func TestExtractFile(t *testing.T) {
	fc, err := ExtractFile(writeTemplate(t), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "template.xlsx", fc.BookName)
	assert.Equal(t, "Sheet1", fc.SheetName)
	assert.Equal(t, []string{"B1", "B8", "G4", "G5", "J4", "D12", "E10"}, addresses(fc.Fields))

	labels := make(map[string]string)
	for _, f := range fc.Fields {
		labels[f.Address] = f.Group + "/" + f.Label
	}
	assert.Equal(t, map[string]string{
		"B1":  "Algemeen/DATUM:",
		"B8":  "Algemeen/Vroeg Veer",
		"G4":  "Breda 2/6",
		"G5":  "Breda 2/7 TR",
		"J4":  "Oss 3/6",
		"D12": "Zware Berging/Internationaal",
		"E10": "Zware Berging/Roosendaal | 9 Con",
	}, labels)

	groups := fc.Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, "Algemeen", groups[0].Name)
	assert.Equal(t, "Zware Berging", groups[3].Name)
}

func TestExtractMissingLabels(t *testing.T) {
	f := excelize.NewFile()
	wb := workbook.Wrap(f)
	defer wb.Close()

	fc, err := Extract(wb, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, fc.Fields)
	assert.Equal(t, "Sheet1", fc.SheetName)
}

func TestExtractNoSheet(t *testing.T) {
	for _, wb := range []*fakeWorkbook{{}, {sheets: []string{""}}} {
		_, err := Extract(wb, DefaultOptions())
		assert.True(t, errors.Is(err, ErrNoSheet))
	}
}

func TestExtractDuplicates(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Alpha"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "6"))
	wb := workbook.Wrap(f)
	defer wb.Close()

	// The block field (extracted first, lower sort key) claims B2.
	c := &catalog.Catalog{Entries: []catalog.Entry{
		{Strategy: catalog.TwoColumn, Label: "Alpha"},
		{Strategy: catalog.KeyValue, Label: "6", Group: "Zulu"},
	}}
	fc, err := Extract(wb, Options{Catalog: c})
	require.NoError(t, err)
	require.Len(t, fc.Fields, 1)
	assert.Equal(t, "B2", fc.Fields[0].Address)
	assert.Equal(t, "Alpha", fc.Fields[0].Group)

	// Ordering happens before de-duplication: the lower sort key wins.
	c = &catalog.Catalog{Entries: []catalog.Entry{
		{Strategy: catalog.TwoColumn, Label: "Alpha"},
		{Strategy: catalog.KeyValue, Label: "6", Group: "Aardvark"},
	}}
	fc, err = Extract(wb, Options{Catalog: c})
	require.NoError(t, err)
	require.Len(t, fc.Fields, 1)
	assert.Equal(t, "Aardvark", fc.Fields[0].Group)
}

func TestExtractBlockParams(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Ede 4"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "6"))
	require.NoError(t, f.SetCellValue("Sheet1", "A5", "9"))
	wb := workbook.Wrap(f)
	defer wb.Close()

	c := &catalog.Catalog{Entries: []catalog.Entry{{Strategy: catalog.TwoColumn, Label: "Ede 4"}}}

	fc, err := Extract(wb, Options{Catalog: c})
	require.NoError(t, err)
	assert.Equal(t, []string{"B2", "B5"}, addresses(fc.Fields))

	fc, err = Extract(wb, Options{Catalog: c, Block: parser.BlockParams{EmptyStreak: 2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"B2"}, addresses(fc.Fields))
}
