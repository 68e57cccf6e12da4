// Package cellref converts between spreadsheet cell addresses ("B5") and
// zero-based (row, col) coordinates.
package cellref

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
	"github.com/xuri/excelize/v2"
)

var addressPattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// IsAddress reports whether s is a plain cell address: uppercase column letters
// followed by a row number, without sheet prefix or "$" anchors.
func IsAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// Decode parses a cell address into zero-based row and column indexes.
func Decode(addr string) (row, col int, err error) {
	if !IsAddress(addr) {
		return 0, 0, fmt.Errorf("invalid cell address %q", addr)
	}
	c, r, err := excelize.CellNameToCoordinates(addr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell address %q: %w", addr, err)
	}
	return r - 1, c - 1, nil
}

// Encode builds the canonical cell address for zero-based row and column indexes.
func Encode(row, col int) (string, error) {
	if row < 0 || row >= excelize.TotalRows || col < 0 || col >= excelize.MaxColumns {
		return "", fmt.Errorf("cell (%d, %d) out of range", row, col)
	}
	return excelize.CoordinatesToCellName(col+1, row+1)
}

// MustEncode is like Encode but panics on out-of-range coordinates.
func MustEncode(row, col int) string {
	addr, err := Encode(row, col)
	if err != nil {
		panic(err)
	}
	return addr
}

// ParseRange parses a range such as "A1:C3" (or "$A$1:$C$3") into zero-based bounds.
func ParseRange(ref string) (models.MergeRange, error) {
	ref = strings.ReplaceAll(ref, "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return models.MergeRange{}, fmt.Errorf("invalid range %q", ref)
	}

	r1, c1, err := Decode(parts[0])
	if err != nil {
		return models.MergeRange{}, err
	}
	r2, c2, err := Decode(parts[1])
	if err != nil {
		return models.MergeRange{}, err
	}

	return models.MergeRange{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}
