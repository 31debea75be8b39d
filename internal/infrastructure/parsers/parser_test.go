package parsers

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRowReader_ReadRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{
			name:     "ragged rows",
			input:    "Crash Site,,\n,,Weapon,Phalar\n",
			expected: [][]string{{"Crash Site", "", ""}, {"", "", "Weapon", "Phalar"}},
		},
		{
			name:     "quoted cell with comma",
			input:    "\"Area, North\",x\n",
			expected: [][]string{{"Area, North", "x"}},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &CSVRowReader{}
			rows, err := reader.ReadRows(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rows)
		})
	}
}

func TestCSVRowReader_ReadRows_ErrorLine(t *testing.T) {
	// The second record spans lines 2 to 4, so the last good record ends on line 5.
	input := "Area,x\n,\"first\nsecond\nthird\"\nb,c\n"
	r := io.MultiReader(strings.NewReader(input), iotest.ErrReader(errors.New("connection reset")))

	_, err := (&CSVRowReader{}).ReadRows(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after line 5")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestJSONRowReader_ReadRows(t *testing.T) {
	reader := &JSONRowReader{}

	rows, err := reader.ReadRows(strings.NewReader(`[["Grove","","Ring"],["","x"]]`))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Grove", "", "Ring"}, {"", "x"}}, rows)

	_, err = reader.ReadRows(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONRowReader{}, ForFile("act1.json"))
	assert.IsType(t, &CSVRowReader{}, ForFile("act1.csv"))
	assert.Nil(t, ForFile("act1.txt"))
	assert.Nil(t, ForFile("noextension"))
}
