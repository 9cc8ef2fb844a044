package ephem

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/signalsfoundry/skyplot"
	"github.com/signalsfoundry/skyplot/angle"
)

// wrapDiff returns the smallest angular distance between two longitudes
// given in degrees.
func wrapDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestSunEquatorial_MarchEquinox(t *testing.T) {
	// At the equinox instant the Sun crosses the celestial equator at the
	// origin of right ascension.
	sun := SunEquatorial(time.Date(2021, 3, 20, 9, 37, 0, 0, time.UTC))

	if ra := sun.Lon.Degrees(); wrapDiff(ra, 0) > 0.1 {
		t.Fatalf("equinox right ascension = %v deg, want ~0", ra)
	}
	if dec := sun.Lat.Degrees(); math.Abs(dec) > 0.05 {
		t.Fatalf("equinox declination = %v deg, want ~0", dec)
	}
}

func TestSunEquatorial_Solstices(t *testing.T) {
	june := SunEquatorial(time.Date(2021, 6, 21, 3, 32, 0, 0, time.UTC))
	if dec := june.Lat.Degrees(); math.Abs(dec-23.44) > 0.05 {
		t.Fatalf("June solstice declination = %v deg, want ~23.44", dec)
	}
	if ra := june.Lon.Degrees(); wrapDiff(ra, 90) > 0.5 {
		t.Fatalf("June solstice right ascension = %v deg, want ~90", ra)
	}

	december := SunEquatorial(time.Date(2021, 12, 21, 15, 59, 0, 0, time.UTC))
	if dec := december.Lat.Degrees(); math.Abs(dec+23.44) > 0.05 {
		t.Fatalf("December solstice declination = %v deg, want ~-23.44", dec)
	}
	if ra := december.Lon.Degrees(); wrapDiff(ra, 270) > 0.5 {
		t.Fatalf("December solstice right ascension = %v deg, want ~270", ra)
	}
}

func TestSubsolarPoint_GreenwichNoon(t *testing.T) {
	// June 13 is a zero crossing of the equation of time, so at 12:00 UTC
	// the subsolar point sits almost exactly on the prime meridian.
	sub := SubsolarPoint(time.Date(2021, 6, 13, 12, 0, 0, 0, time.UTC))

	if lon := sub.Lon.Degrees(); wrapDiff(lon, 0) > 0.5 {
		t.Fatalf("subsolar longitude = %v deg, want ~0", lon)
	}
	if lat := sub.Lat.Degrees(); math.Abs(lat-23.2) > 0.5 {
		t.Fatalf("subsolar latitude = %v deg, want ~23.2", lat)
	}
}

func TestSubsolarPoint_LatitudeWithinTropics(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		sub := SubsolarPoint(time.Date(2021, month, 15, 6, 30, 0, 0, time.UTC))
		if lat := sub.Lat.Degrees(); math.Abs(lat) > 23.6 {
			t.Fatalf("month %v: subsolar latitude = %v deg, outside the tropics", month, lat)
		}
		if lon := sub.Lon.Degrees(); lon < 0 || lon >= 360 {
			t.Fatalf("month %v: subsolar longitude = %v deg, want [0, 360)", month, lon)
		}
	}
}

func TestAvoidanceCircle_VerticesAtRadius(t *testing.T) {
	at := time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC)

	ring, err := AvoidanceCircle(at, angle.Degrees(30), skyplot.CircleOptions{Resolution: 24})
	if err != nil {
		t.Fatalf("AvoidanceCircle returned error: %v", err)
	}
	if len(ring) != 24 {
		t.Fatalf("ring has %d vertices, want 24", len(ring))
	}

	sun := SunEquatorial(at)
	for i, v := range ring {
		vc := skyplot.Coord{Lon: angle.Degrees(v[0]), Lat: angle.Degrees(v[1])}
		if sep := skyplot.Separation(sun, vc).Degrees(); math.Abs(sep-30) > 1e-6 {
			t.Fatalf("vertex %d separation = %v deg, want 30", i, sep)
		}
	}
}

func TestAvoidanceCircle_BadRadius(t *testing.T) {
	_, err := AvoidanceCircle(time.Now(), angle.Degrees(-5), skyplot.CircleOptions{})
	if !errors.Is(err, skyplot.ErrRadius) {
		t.Fatalf("error = %v, want skyplot.ErrRadius", err)
	}
}
