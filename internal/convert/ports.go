// Package convert turns the game API export into map data files.
// Coordinates go through the coord engine before they are written.
package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/udisondev/namap/internal/coord"
)

// --- API export structures ---

// APIPosition is an engine-space position. The horizontal plane is (X, Z).
type APIPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Plane returns the horizontal engine-space point.
func (p APIPosition) Plane() coord.Point {
	return coord.Pt(p.X, p.Z)
}

// APIPort is one entry of the port export.
type APIPort struct {
	ID               string      `json:"Id"`
	Name             string      `json:"Name"`
	Position         APIPosition `json:"Position"`
	EntrancePosition APIPosition `json:"EntrancePosition"`
}

// --- Output structures ---

// Port is a port in map space.
type Port struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Coordinates coord.Tuple `json:"coordinates"`
	Entrance    coord.Tuple `json:"entrance"`
	Angle       float64     `json:"angle"`   // bearing port -> entrance
	Compass     string      `json:"compass"` // Angle as compass label

	// unflipped map position for distance calculations
	mapPos coord.Point
}

// MapPosition returns the port position in map space before any Y flip.
func (p Port) MapPosition() coord.Point {
	return p.mapPos
}

// Converter converts API data with one calibration.
type Converter struct {
	cal   coord.Calibration
	flipY bool
}

// NewConverter creates a Converter. The calibration is copied.
func NewConverter(cal coord.Calibration, flipY bool) *Converter {
	return &Converter{cal: cal, flipY: flipY}
}

// ReadPortExport reads the port export JSON file.
func ReadPortExport(path string) ([]APIPort, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ports %s: %w", path, err)
	}

	var ports []APIPort
	if err := json.Unmarshal(raw, &ports); err != nil {
		return nil, fmt.Errorf("parsing ports %s: %w", path, err)
	}
	return ports, nil
}

// Ports converts exported ports to map space, sorted by id.
func (c *Converter) Ports(api []APIPort) ([]Port, error) {
	ports := make([]Port, 0, len(api))
	for _, ap := range api {
		id, err := strconv.Atoi(ap.ID)
		if err != nil {
			return nil, fmt.Errorf("port %q: bad id %q: %w", ap.Name, ap.ID, err)
		}

		pos := roundPoint(c.cal.ToMap(ap.Position.Plane()))
		entrance := roundPoint(c.cal.ToMap(ap.EntrancePosition.Plane()))
		angle := math.Round(coord.RotationAngleInDegrees(pos, entrance))

		ports = append(ports, Port{
			ID:          id,
			Name:        ap.Name,
			Coordinates: c.output(pos),
			Entrance:    c.output(entrance),
			Angle:       angle,
			Compass:     coord.DegreesToCompass(angle),
			mapPos:      pos,
		})
	}

	sort.Slice(ports, func(i, j int) bool {
		return ports[i].ID < ports[j].ID
	})
	return ports, nil
}

func (c *Converter) output(p coord.Point) coord.Tuple {
	if c.flipY {
		return c.cal.AdjustXY(p.X, p.Y)
	}
	return p.Tuple()
}

func roundPoint(p coord.Point) coord.Point {
	return coord.Pt(math.Round(p.X), math.Round(p.Y))
}
