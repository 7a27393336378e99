// Package routing simulates the AI route optimizer of the original
// platform. No real routing happens; plausible routes are generated from a
// seedable random source so the output is deterministic under test.
package routing

import (
	"math/rand"

	"github.com/ecosphere/ecosphere-api/pkg/apperrors"
)

// Point is a WGS84 coordinate on a generated route.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route is one generated route suggestion.
type Route struct {
	StartPoint        string  `json:"startPoint"`
	EndPoint          string  `json:"endPoint"`
	DistanceKM        int     `json:"distanceKm"`
	EstimatedMinutes  int     `json:"estimatedMinutes"`
	EcoScore          int     `json:"ecoScore"`
	CarbonSavedKG     int     `json:"carbonSavedKg"`
	TrafficLevel      string  `json:"trafficLevel"`
	Points            []Point `json:"route"`
	AlternativeRoutes []Route `json:"alternativeRoutes,omitempty"`
}

// Options tunes route generation.
type Options struct {
	PrioritizeEco bool
	IsEmergency   bool
}

// Base coordinates the fake route points scatter around.
const (
	baseLat = 51.5074
	baseLng = -0.1278
)

var trafficLevels = []string{"Low", "Medium", "High"}

// Optimizer generates simulated routes.
type Optimizer struct {
	rnd *rand.Rand
}

// NewOptimizer creates an optimizer driven by the given random source.
func NewOptimizer(rnd *rand.Rand) *Optimizer {
	return &Optimizer{rnd: rnd}
}

// Optimize produces a route between two named points plus alternatives.
// Emergency routes get exactly one alternative; others get up to two.
func (o *Optimizer) Optimize(start, end string, opts Options) (*Route, error) {
	if start == "" || end == "" {
		return nil, apperrors.Validation("start and end points are required")
	}

	route := o.generate(start, end, opts)

	numAlternatives := o.rnd.Intn(3)
	if opts.IsEmergency {
		numAlternatives = 1
	}
	for i := 0; i < numAlternatives; i++ {
		alt := o.generate(start, end, opts)
		route.AlternativeRoutes = append(route.AlternativeRoutes, alt)
	}

	return &route, nil
}

func (o *Optimizer) generate(start, end string, opts Options) Route {
	route := Route{
		StartPoint:       start,
		EndPoint:         end,
		DistanceKM:       o.rnd.Intn(16) + 2,  // 2-17km
		EstimatedMinutes: o.rnd.Intn(41) + 5,  // 5-45 minutes
		TrafficLevel:     trafficLevels[o.rnd.Intn(len(trafficLevels))],
		Points:           o.routePoints(),
	}

	if opts.PrioritizeEco {
		route.EcoScore = o.rnd.Intn(31) + 70 // 70-100
		route.CarbonSavedKG = o.rnd.Intn(6) + 2
	} else {
		route.EcoScore = o.rnd.Intn(61) + 20 // 20-80
		route.CarbonSavedKG = o.rnd.Intn(3)
	}
	return route
}

func (o *Optimizer) routePoints() []Point {
	numPoints := o.rnd.Intn(5) + 4
	pts := make([]Point, numPoints)
	for i := range pts {
		pts[i] = Point{
			Lat: baseLat + o.rnd.Float64()*0.1 - 0.05,
			Lng: baseLng + o.rnd.Float64()*0.1 - 0.05,
		}
	}
	return pts
}
