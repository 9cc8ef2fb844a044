package ephem

import (
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/signalsfoundry/skyplot"
	"github.com/signalsfoundry/skyplot/angle"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// SunEquatorial returns the Sun's apparent equatorial position at t.
// Longitude holds the right ascension in [0, 2*pi), latitude the
// declination.
func SunEquatorial(t time.Time) skyplot.Coord {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	return skyplot.Coord{
		Lon: angle.Radians(wrap(ra.Rad())),
		Lat: angle.Radians(dec.Rad()),
	}
}

// SubsolarPoint returns the Earth longitude/latitude directly beneath the
// Sun at t: the right ascension rotated into the Earth frame by Greenwich
// apparent sidereal time.
func SubsolarPoint(t time.Time) skyplot.Coord {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	gst := sidereal.Apparent0UT(jd)
	return skyplot.Coord{
		Lon: angle.Radians(wrap(ra.Rad() - gst.Angle().Rad())),
		Lat: angle.Radians(dec.Rad()),
	}
}

// AvoidanceCircle returns the outline of the exclusion cone with the given
// angular radius around the Sun at t, in equatorial coordinates.
func AvoidanceCircle(t time.Time, radius angle.Angle, opts skyplot.CircleOptions) (orb.Ring, error) {
	return skyplot.Circle(SunEquatorial(t), radius, opts)
}

// wrap normalises an angle into [0, 2*pi).
func wrap(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad
}
