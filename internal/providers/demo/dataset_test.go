package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

func TestDefaultDatasetMatchesBahrainDemo(t *testing.T) {
	ds := Default()

	assert.Equal(t, "Bahrain Grand Prix 2023 (Demo Data)", ds.Results.Race)
	require.Len(t, ds.Results.Results, 5)
	assert.Equal(t, "VER", ds.Results.Results[0].Driver)
	assert.Equal(t, "HAM", ds.Results.Results[4].Driver)
	require.Len(t, ds.Stints, 5)
	assert.Equal(t, races.CompoundHard, ds.Stints[2].Compound)
	assert.Equal(t, 21, ds.Stints[2].LapsCount)
	assert.Len(t, ds.Specs.Categories(), 4)
}

func TestRaceDataReturnsCopies(t *testing.T) {
	ds := Default()

	results, stints := ds.RaceData()
	results.Results[0].Driver = "XXX"
	stints[0].LapsCount = 99

	assert.Equal(t, "VER", ds.Results.Results[0].Driver)
	assert.Equal(t, 14, ds.Stints[0].LapsCount)
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	ds, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default().Results, ds.Results)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")
	body := `{"results": {"race": "Monaco", "results": [{"position": 1, "driver": "LEC"}]}, "stints": [{"driver": "LEC", "stint": 1, "compound": "medium", "laps_count": 78}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	ds, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Monaco", ds.Results.Race)
	assert.Equal(t, races.CompoundMedium, ds.Stints[0].Compound)
}

func TestLoadRejectsIncompleteDataset(t *testing.T) {
	tests := map[string]string{
		"no_results": `{"results": {"race": "x", "results": []}, "stints": []}`,
		"no_stints":  `{"results": {"race": "x", "results": [{"driver": "VER"}]}}`,
		"bad_json":   `{`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "demo.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := Load(path)

			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
