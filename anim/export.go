package anim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fermatics/raybend/refract"
)

// JSON schema types
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MediumJSON struct {
	Speed           float64 `json:"speed"`
	RefractiveIndex float64 `json:"refractiveIndex"`
}

type SolutionJSON struct {
	Points          []PointJSON `json:"points"`
	InterfaceY      float64     `json:"interfaceY"`
	CrossingX       float64     `json:"crossingX"`
	TravelTime      float64     `json:"travelTime"`
	PathLength      float64     `json:"pathLength"`
	IncidenceAngle  float64     `json:"incidenceAngle"`  // radians
	RefractionAngle float64     `json:"refractionAngle"` // radians
	Above           MediumJSON  `json:"above"`
	Below           MediumJSON  `json:"below"`
}

func PointToJSON(p refract.Point) PointJSON {
	return PointJSON{X: p.X, Y: p.Y}
}

// SolutionToJSON flattens a solved path and its derived quantities into
// the export schema.
func SolutionToJSON(pf *refract.PathFinder, path refract.Path) SolutionJSON {
	points := make([]PointJSON, len(path))
	for i, p := range path {
		points[i] = PointToJSON(p)
	}

	params := pf.Params()
	n1, n2 := pf.Indices()
	x := path.DepartureCrossing().X
	_, incidence := pf.DistanceAndIncidenceAngle(x)

	return SolutionJSON{
		Points:          points,
		InterfaceY:      params.InterfaceY,
		CrossingX:       x,
		TravelTime:      pf.TravelTime(x),
		PathLength:      path.TotalLength(),
		IncidenceAngle:  incidence,
		RefractionAngle: pf.RefractionAngle(x),
		Above:           MediumJSON{Speed: params.Medium1.Speed, RefractiveIndex: n1},
		Below:           MediumJSON{Speed: params.Medium2.Speed, RefractiveIndex: n2},
	}
}

// WriteSolutionJSON saves the solved path in a machine-readable form
// for external viewers and tooling.
func WriteSolutionJSON(w io.Writer, pf *refract.PathFinder, path refract.Path) error {
	data, err := json.MarshalIndent(SolutionToJSON(pf, path), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling solution: %w", err)
	}
	_, err = w.Write(data)
	return err
}
