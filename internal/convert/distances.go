package convert

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Distance is [fromID, toID, travel distance] with fromID < toID.
type Distance [3]int

// Distances returns the travel distance between every pair of ports.
// Rows are computed concurrently on at most workers goroutines; the result
// order follows the port order.
func (c *Converter) Distances(ctx context.Context, ports []Port, workers int) ([]Distance, error) {
	rows := make([][]Distance, len(ports))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i := range ports {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = c.distanceRow(ports, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := len(ports) * (len(ports) - 1) / 2
	out := make([]Distance, 0, total)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out, nil
}

func (c *Converter) distanceRow(ports []Port, i int) []Distance {
	from := ports[i]
	row := make([]Distance, 0, len(ports)-i-1)
	for _, to := range ports[i+1:] {
		d := c.cal.TravelDistance(from.mapPos, to.mapPos)
		a, b := from.ID, to.ID
		if a > b {
			a, b = b, a
		}
		row = append(row, Distance{a, b, int(math.Round(d))})
	}
	return row
}
