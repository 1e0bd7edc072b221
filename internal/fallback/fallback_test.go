package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundled_Parses(t *testing.T) {
	records, err := Bundled()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	ids := map[int64]bool{}
	for _, r := range records {
		assert.False(t, ids[r.ID], "duplicate id %d", r.ID)
		ids[r.ID] = true
		assert.NotEmpty(t, r.Name)
		// [longitude, latitude]: latitude must be within ±90, longitude within ±180.
		assert.LessOrEqual(t, r.Coordinates.Latitude(), 90.0)
		assert.GreaterOrEqual(t, r.Coordinates.Latitude(), -90.0)
		assert.LessOrEqual(t, r.Coordinates.Longitude(), 180.0)
		assert.GreaterOrEqual(t, r.Coordinates.Longitude(), -180.0)
		assert.NotZero(t, r.Zoom)
	}
}

func TestParse_KeepsCoordinateOrder(t *testing.T) {
	records, err := Parse([]byte(`[{"id":1,"name":"Casa","location":"Santiago","coordinates":[-70.6483,-33.4569],"type":"Residential","image":"/a.jpg"}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, -70.6483, records[0].Coordinates.Longitude())
	assert.Equal(t, -33.4569, records[0].Coordinates.Latitude())
	assert.Equal(t, 12.0, records[0].Zoom)
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`[{"id":1,"name":"A"},{"id":1,"name":"B"}]`))
	assert.Error(t, err)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":9,"name":"Only","coordinates":[1,2],"zoom":5}]`), 0o600))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(9), records[0].ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesBundled(t *testing.T) {
	fromLoad, err := Load("")
	require.NoError(t, err)
	bundledRecords, err := Bundled()
	require.NoError(t, err)
	assert.Equal(t, bundledRecords, fromLoad)
}
