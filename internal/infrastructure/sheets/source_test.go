package sheets

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bg3-checklist/internal/domain/entities"
)

func TestSource_Fetch_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Crash Site,,\n,,Weapon,Phalar\n"))
	}))
	defer server.Close()

	source := NewSource(map[entities.Act]Location{entities.Act1: {URL: server.URL}}, server.Client())

	rows, err := source.Fetch(t.Context(), entities.Act1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Crash Site", "", ""}, {"", "", "Weapon", "Phalar"}}, rows)
}

func TestSource_Fetch_URLStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	source := NewSource(map[entities.Act]Location{entities.Act2: {URL: server.URL}}, server.Client())

	_, err := source.Fetch(t.Context(), entities.Act2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching sheet for act 2")
	assert.Contains(t, err.Error(), "404")
}

func TestSource_Fetch_File(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "act1.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Grove,,a hint\n"), 0644))
	jsonPath := filepath.Join(dir, "act2.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[["Camp"]]`), 0644))

	source := NewSource(map[entities.Act]Location{
		entities.Act1: {File: csvPath, URL: "http://unused.invalid"},
		entities.Act2: {File: jsonPath},
	}, nil)

	rows, err := source.Fetch(t.Context(), entities.Act1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Grove", "", "a hint"}}, rows)

	rows, err = source.Fetch(t.Context(), entities.Act2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Camp"}}, rows)
}

func TestSource_Fetch_Errors(t *testing.T) {
	dir := t.TempDir()
	txtPath := filepath.Join(dir, "act1.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0644))

	tests := []struct {
		name     string
		location Location
		act      entities.Act
		errMsg   string
	}{
		{
			name:   "act not configured",
			act:    entities.Act3,
			errMsg: "no sheet configured for act 3",
		},
		{
			name:     "missing file",
			location: Location{File: filepath.Join(dir, "missing.csv")},
			act:      entities.Act1,
			errMsg:   "sheet file not found",
		},
		{
			name:     "unsupported extension",
			location: Location{File: txtPath},
			act:      entities.Act1,
			errMsg:   "unsupported sheet format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations := map[entities.Act]Location{}
			if tt.location != (Location{}) {
				locations[tt.act] = tt.location
			}
			_, err := NewSource(locations, nil).Fetch(t.Context(), tt.act)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
