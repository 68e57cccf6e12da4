package cellref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/dagrooster-go/pkg/dagrooster/models"
)

func TestIsAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"A1", true},
		{"XFD1048576", true},
		{"AB12", true},
		{"a1", false},
		{"$A$1", false},
		{"A", false},
		{"1", false},
		{"!merges", false},
		{"Sheet1!A1", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsAddress(tt.input), tt.input)
	}
}

func TestDecodeEncode(t *testing.T) {
	tests := []struct {
		addr     string
		row, col int
	}{
		{"A1", 0, 0},
		{"B5", 4, 1},
		{"Z10", 9, 25},
		{"AA1", 0, 26},
		{"AZ100", 99, 51},
	}

	for _, tt := range tests {
		r, c, err := Decode(tt.addr)
		require.NoError(t, err, tt.addr)
		assert.Equal(t, tt.row, r, tt.addr)
		assert.Equal(t, tt.col, c, tt.addr)

		addr, err := Encode(tt.row, tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.addr, addr)
	}
}

func TestRoundTrip(t *testing.T) {
	for r := 0; r < 60; r += 7 {
		for c := 0; c < 800; c += 13 {
			addr, err := Encode(r, c)
			require.NoError(t, err)
			gotR, gotC, err := Decode(addr)
			require.NoError(t, err)
			assert.Equal(t, [2]int{r, c}, [2]int{gotR, gotC}, addr)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{"", "A0", "a1", "1A", "A1:B2", "$A$1"} {
		_, _, err := Decode(s)
		assert.Error(t, err, s)
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	_, err := Encode(-1, 0)
	assert.Error(t, err)
	_, err = Encode(0, -1)
	assert.Error(t, err)
	_, err = Encode(0, 16384)
	assert.Error(t, err)
	_, err = Encode(1048576, 0)
	assert.Error(t, err)

	assert.Panics(t, func() { MustEncode(-1, -1) })
}

func TestParseRange(t *testing.T) {
	m, err := ParseRange("$B$3:D3")
	require.NoError(t, err)
	assert.Equal(t, models.MergeRange{R1: 2, C1: 1, R2: 2, C2: 3}, m)

	_, err = ParseRange("B3")
	assert.Error(t, err)
	_, err = ParseRange("B3:x")
	assert.Error(t, err)
}
