package convert

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/namap/internal/config"
	"github.com/udisondev/namap/internal/coord"
)

// Engine positions of three ports that land on whole map coordinates:
// 1 at (1000, 2000), 2 at (3000, 2000), 3 at (1000, 5000).
const portExport = `[
  {"Id": "3", "Name": "Gamma",
   "Position": {"x": 619534.583, "y": 12, "z": 180694.175},
   "EntrancePosition": {"x": 617534.05, "y": 0, "z": 180694.089}},
  {"Id": "1", "Name": "Alpha",
   "Position": {"x": 619560.354, "y": 0, "z": -419465.732},
   "EntrancePosition": {"x": 619560.268, "y": 0, "z": -417465.199}},
  {"Id": "2", "Name": "Beta",
   "Position": {"x": 219453.75, "y": 0, "z": -419482.912},
   "EntrancePosition": {"x": 221454.283, "y": 0, "z": -419482.826}}
]`

func writeExport(t *testing.T, dir, body string) config.Converter {
	t.Helper()
	cfg := config.DefaultConverter()
	cfg.APIDir = filepath.Join(dir, "api")
	cfg.OutputDir = filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(cfg.APIDir, 0o755))
	require.NoError(t, os.WriteFile(cfg.PortsExportPath(), []byte(body), 0o644))
	return cfg
}

func readExport(t *testing.T) []APIPort {
	t.Helper()
	var api []APIPort
	require.NoError(t, json.Unmarshal([]byte(portExport), &api))
	return api
}

func TestPorts(t *testing.T) {
	conv := NewConverter(coord.DefaultCalibration(), false)
	ports, err := conv.Ports(readExport(t))
	require.NoError(t, err)
	require.Len(t, ports, 3)

	tests := []struct {
		id       int
		name     string
		coords   coord.Tuple
		entrance coord.Tuple
		angle    float64
		compass  string
	}{
		{1, "Alpha", coord.Tuple{1000, 2000}, coord.Tuple{1000, 2010}, 0, "N"},
		{2, "Beta", coord.Tuple{3000, 2000}, coord.Tuple{2990, 2000}, 90, "E"},
		{3, "Gamma", coord.Tuple{1000, 5000}, coord.Tuple{1010, 5000}, 270, "W"},
	}

	for i, tt := range tests {
		p := ports[i]
		assert.Equal(t, tt.id, p.ID)
		assert.Equal(t, tt.name, p.Name)
		assert.Equal(t, tt.coords, p.Coordinates)
		assert.Equal(t, tt.entrance, p.Entrance)
		assert.Equal(t, tt.angle, p.Angle)
		assert.Equal(t, tt.compass, p.Compass)
		assert.Equal(t, tt.coords.Point(), p.MapPosition())
	}
}

func TestPortsFlipY(t *testing.T) {
	conv := NewConverter(coord.DefaultCalibration(), true)
	ports, err := conv.Ports(readExport(t))
	require.NoError(t, err)

	assert.Equal(t, coord.Tuple{1000, 6192}, ports[0].Coordinates)
	assert.Equal(t, coord.Tuple{1000, 6182}, ports[0].Entrance)
	// bearing and distances use the unflipped position
	assert.Equal(t, "N", ports[0].Compass)
	assert.Equal(t, coord.Pt(1000, 2000), ports[0].MapPosition())
}

func TestPortsBadID(t *testing.T) {
	conv := NewConverter(coord.DefaultCalibration(), false)
	_, err := conv.Ports([]APIPort{{ID: "x1", Name: "Broken"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

func TestDistances(t *testing.T) {
	conv := NewConverter(coord.DefaultCalibration(), false)
	ports, err := conv.Ports(readExport(t))
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 4} {
		got, err := conv.Distances(context.Background(), ports, workers)
		require.NoError(t, err)
		assert.Equal(t, []Distance{{1, 2, 390}, {1, 3, 585}, {2, 3, 703}}, got, "workers=%d", workers)
	}
}

func TestDistancesSymmetric(t *testing.T) {
	conv := NewConverter(coord.DefaultCalibration(), false)
	ports, err := conv.Ports(readExport(t))
	require.NoError(t, err)

	reversed := []Port{ports[2], ports[1], ports[0]}
	got, err := conv.Distances(context.Background(), reversed, 2)
	require.NoError(t, err)
	assert.Equal(t, []Distance{{2, 3, 703}, {1, 3, 585}, {1, 2, 390}}, got)
}

func TestDistancesEdgeCases(t *testing.T) {
	conv := NewConverter(coord.DefaultCalibration(), false)

	got, err := conv.Distances(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = conv.Distances(ctx, make([]Port, 3), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertPortsAndDistances(t *testing.T) {
	cfg := writeExport(t, t.TempDir(), portExport)
	ctx := context.Background()

	require.NoError(t, ConvertPorts(ctx, cfg))
	require.NoError(t, ConvertDistances(ctx, cfg))

	raw, err := os.ReadFile(cfg.PortsPath())
	require.NoError(t, err)
	var ports []map[string]any
	require.NoError(t, json.Unmarshal(raw, &ports))
	require.Len(t, ports, 3)
	assert.Equal(t, "Alpha", ports[0]["name"])
	assert.Equal(t, []any{1000.0, 2000.0}, ports[0]["coordinates"])
	assert.NotContains(t, ports[0], "mapPos")

	raw, err = os.ReadFile(cfg.DistancesPath())
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2,390],[1,3,585],[2,3,703]]`, string(raw))
}

func TestConvertPortsMissingExport(t *testing.T) {
	cfg := config.DefaultConverter()
	cfg.APIDir = filepath.Join(t.TempDir(), "nothing")

	err := ConvertPorts(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertPortsInvalidJSON(t *testing.T) {
	cfg := writeExport(t, t.TempDir(), `{"not": "an array"}`)
	err := ConvertPorts(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing ports")
}
