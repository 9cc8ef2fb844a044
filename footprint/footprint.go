// Package footprint derives satellite ground-coverage outlines: the
// sub-satellite point from a two-line element set, and the angular radius
// of the ground region that sees the satellite above an elevation mask.
package footprint

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/paulmach/orb"
	"github.com/signalsfoundry/skyplot"
	"github.com/signalsfoundry/skyplot/angle"
)

// EarthRadiusKm is the mean Earth radius used for the spherical model
// (kilometres).
const EarthRadiusKm = 6371.0

var (
	// ErrTLE is returned when element lines cannot hold a valid TLE.
	ErrTLE = errors.New("footprint: invalid TLE")

	// ErrAltitude is returned for negative satellite altitudes.
	ErrAltitude = errors.New("footprint: altitude must be non-negative")

	// ErrElevation is returned when an elevation mask lies outside [0, pi/2].
	ErrElevation = errors.New("footprint: elevation must lie in [0, pi/2]")
)

// Satellite propagates a two-line element set with SGP4.
type Satellite struct {
	sat satellite.Satellite
}

// FromTLE parses the two element lines against the WGS72 gravity model,
// the constants the published elements are fitted to.
func FromTLE(line1, line2 string) (*Satellite, error) {
	if len(line1) < 69 || len(line2) < 69 {
		return nil, fmt.Errorf("%w: element lines must be 69 characters", ErrTLE)
	}
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	return &Satellite{sat: sat}, nil
}

// Subpoint returns the sub-satellite longitude/latitude and the altitude
// above the spherical Earth in kilometres at t. go-satellite works in
// kilometres throughout.
func (s *Satellite) Subpoint(t time.Time) (skyplot.Coord, float64) {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, _ := satellite.Propagate(s.sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	v := r3.Vector{X: posECEF.X, Y: posECEF.Y, Z: posECEF.Z}
	ll := s2.LatLngFromPoint(s2.PointFromCoords(v.X, v.Y, v.Z))

	lon := ll.Lng.Radians()
	if lon < 0 {
		lon += 2 * math.Pi
	}
	coord := skyplot.Coord{
		Lon: angle.Radians(lon),
		Lat: angle.Radians(ll.Lat.Radians()),
	}
	return coord, v.Norm() - EarthRadiusKm
}

// Coverage returns the outline of the ground region that sees the
// satellite at or above minElevation at t.
func (s *Satellite) Coverage(t time.Time, minElevation angle.Angle, opts skyplot.CircleOptions) (orb.Ring, error) {
	center, altKm := s.Subpoint(t)
	radius, err := VisibilityRadius(altKm, minElevation)
	if err != nil {
		return nil, err
	}
	return skyplot.Circle(center, radius, opts)
}

// HorizonRadius returns the angular radius of the geometric horizon
// circle for a satellite at altitudeKm: the ring of ground points where
// it sits at elevation zero.
func HorizonRadius(altitudeKm float64) (angle.Angle, error) {
	if altitudeKm < 0 {
		return angle.Angle{}, fmt.Errorf("%w: got %v km", ErrAltitude, altitudeKm)
	}
	return angle.Radians(math.Acos(EarthRadiusKm / (EarthRadiusKm + altitudeKm))), nil
}

// VisibilityRadius returns the angular radius of the ground region that
// sees a satellite at altitudeKm at or above minElevation. A zero mask
// reduces to HorizonRadius.
func VisibilityRadius(altitudeKm float64, minElevation angle.Angle) (angle.Angle, error) {
	if altitudeKm < 0 {
		return angle.Angle{}, fmt.Errorf("%w: got %v km", ErrAltitude, altitudeKm)
	}
	eps := minElevation.Radians()
	if eps < 0 || eps > math.Pi/2 {
		return angle.Angle{}, fmt.Errorf("%w: got %v rad", ErrElevation, eps)
	}

	// Sine rule in the Earth-centre / ground-site / satellite triangle:
	// a site sees the satellite at exactly eps when the angle at the
	// satellite satisfies sin = Re cos(eps) / (Re + h). The central angle
	// is what remains of the triangle.
	c := EarthRadiusKm * math.Cos(eps) / (EarthRadiusKm + altitudeKm)
	if c > 1 {
		c = 1
	}
	return angle.Radians(math.Acos(c) - eps), nil
}
