// Package export renders simulation snapshots and trails into portable
// formats. Everything writes to an io.Writer; choosing a destination is
// the caller's business.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/sim"
)

// WriteCSV emits one row per retained trail sample:
// body,color,mass,sample,x,y. Sample indices count oldest first.
func WriteCSV(w io.Writer, bodies []sim.BodyState, trails [][]physics.Vec2) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"body", "color", "mass", "sample", "x", "y"}); err != nil {
		return err
	}
	for i, trail := range trails {
		for k, p := range trail {
			row := []string{
				strconv.Itoa(i),
				bodies[i].Color,
				formatFloat(bodies[i].Mass),
				strconv.Itoa(k),
				formatFloat(p.X),
				formatFloat(p.Y),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonBody struct {
	Mass  float64    `json:"mass"`
	Pos   [2]float64 `json:"pos"`
	Vel   [2]float64 `json:"vel"`
	Color string     `json:"color"`
}

type jsonDocument struct {
	Bodies []jsonBody     `json:"bodies"`
	Trails [][][2]float64 `json:"trails"`
}

// WriteJSON emits the snapshot and trails as a single indented document.
func WriteJSON(w io.Writer, bodies []sim.BodyState, trails [][]physics.Vec2) error {
	doc := jsonDocument{
		Bodies: make([]jsonBody, len(bodies)),
		Trails: make([][][2]float64, len(trails)),
	}
	for i, b := range bodies {
		doc.Bodies[i] = jsonBody{
			Mass:  b.Mass,
			Pos:   [2]float64{b.Pos.X, b.Pos.Y},
			Vel:   [2]float64{b.Vel.X, b.Vel.Y},
			Color: b.Color,
		}
	}
	for i, trail := range trails {
		points := make([][2]float64, len(trail))
		for k, p := range trail {
			points[k] = [2]float64{p.X, p.Y}
		}
		doc.Trails[i] = points
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
