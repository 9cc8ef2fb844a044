// Package skyplot generates polygon outlines of circles drawn on the
// surface of a sphere, for plotting on celestial or geographic grids.
//
// A circle offset naively in longitude and latitude distorts toward the
// poles. Circle instead builds the ring around the north pole at constant
// latitude and rigidly rotates it onto the requested center, which keeps
// every vertex at the same great-circle distance from the center at any
// latitude.
package skyplot

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/signalsfoundry/skyplot/angle"
)

// DefaultResolution is the vertex count used when CircleOptions.Resolution
// is zero.
const DefaultResolution = 100

var (
	// ErrResolution is returned when a circle is requested with fewer than
	// three vertices.
	ErrResolution = errors.New("skyplot: resolution must be at least 3")

	// ErrRadius is returned when an angular radius lies outside [0, pi].
	ErrRadius = errors.New("skyplot: radius must lie in [0, pi]")
)

// Coord is a longitude/latitude pair on the unit sphere. Longitudes may be
// given in any range; generated output keeps them in [0, 2*pi).
type Coord struct {
	Lon angle.Angle
	Lat angle.Angle
}

// CircleOptions control vertex generation. The zero value requests
// DefaultResolution vertices in degrees.
type CircleOptions struct {
	Resolution int
	Unit       angle.Unit
}

var (
	axisY = s2.Point{Vector: r3.Vector{Y: 1}}
	axisZ = s2.Point{Vector: r3.Vector{Z: 1}}
)

// Circle returns the vertices of the circle with the given angular radius
// around center. The ring is ordered, evenly spaced, and open: the first
// vertex is not repeated at the end. Both components of every vertex are
// expressed in opts.Unit, longitude first.
//
// The ring starts due south of center (at the vertex rotated up from
// longitude zero) and proceeds counterclockwise as seen on a lon/lat plot.
// A radius of zero is valid and collapses every vertex onto center.
func Circle(center Coord, radius angle.Angle, opts CircleOptions) (orb.Ring, error) {
	res := opts.Resolution
	if res == 0 {
		res = DefaultResolution
	}
	if res < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, opts.Resolution)
	}
	r := radius.Radians()
	if r < 0 || r > math.Pi {
		return nil, fmt.Errorf("%w: got %v rad", ErrRadius, r)
	}

	// Ring around the north pole, then tilt down to the center's
	// colatitude and spin to its longitude.
	tilt := s1.Angle(math.Pi/2 - center.Lat.Radians())
	spin := s1.Angle(center.Lon.Radians())
	ringLat := s1.Angle(math.Pi/2 - r)

	ring := make(orb.Ring, res)
	step := 2 * math.Pi / float64(res)
	for i := range ring {
		p := s2.PointFromLatLng(s2.LatLng{Lat: ringLat, Lng: s1.Angle(float64(i) * step)})
		p = s2.Rotate(p, axisY, tilt)
		p = s2.Rotate(p, axisZ, spin)
		ll := s2.LatLngFromPoint(p)

		lng := ll.Lng.Radians()
		if lng < 0 {
			lng += 2 * math.Pi
		}
		lon, err := angle.Radians(lng).In(opts.Unit)
		if err != nil {
			return nil, err
		}
		lat, err := angle.Radians(ll.Lat.Radians()).In(opts.Unit)
		if err != nil {
			return nil, err
		}
		ring[i] = orb.Point{lon, lat}
	}
	return ring, nil
}

// Separation returns the great-circle distance between a and b.
func Separation(a, b Coord) angle.Angle {
	return angle.Radians(point(a).Distance(point(b)).Radians())
}

func point(c Coord) s2.Point {
	return s2.PointFromLatLng(s2.LatLng{
		Lat: s1.Angle(c.Lat.Radians()),
		Lng: s1.Angle(c.Lon.Radians()),
	})
}
