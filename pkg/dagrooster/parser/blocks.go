package parser

import (
	"fmt"

	"github.com/ukaji3/dagrooster-go/internal/utils"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/workbook"
)

// BlockParams holds parameters for two-column block scanning.
type BlockParams struct {
	// MaxRows is the number of rows scanned below the header.
	MaxRows int
	// EmptyStreak is the number of consecutive blank rows that ends a block.
	EmptyStreak int
}

// DefaultBlockParams returns default block scanning parameters.
func DefaultBlockParams() BlockParams {
	return BlockParams{
		MaxRows:     28,
		EmptyStreak: 8,
	}
}

// TwoColumnBlock extracts the fields below a header cell. The header's column
// holds the row labels and the column to its right receives the values.
func TwoColumnBlock(wb workbook.Workbook, sheetName, header string, params BlockParams) ([]models.Field, error) {
	h, err := FindCellByText(wb, sheetName, header)
	if err != nil {
		return nil, err
	}
	if h == nil {
		utils.Log.Debugf("header %q not found in %s", header, sheetName)
		return nil, nil
	}

	var fields []models.Field
	labelCol := h.Col
	valueCol := h.Col + 1
	startRow := h.Row + 1
	emptyStreak := 0

	for r := startRow; r < startRow+params.MaxRows; r++ {
		label, err := cellText(wb, sheetName, r, labelCol)
		if err != nil {
			return nil, err
		}
		value, err := cellText(wb, sheetName, r, valueCol)
		if err != nil {
			return nil, err
		}

		if label == "" && value == "" {
			emptyStreak++
			if emptyStreak >= params.EmptyStreak {
				break
			}
			continue
		}
		emptyStreak = 0

		// a value without a label cannot be shown to the user
		if label == "" {
			continue
		}

		if f, ok := newField("f", sheetName, header, label, r, valueCol, fmt.Sprintf("%s|%03d", header, r)); ok {
			fields = append(fields, f)
		}
	}

	return fields, nil
}
