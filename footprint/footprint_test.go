package footprint

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/signalsfoundry/skyplot"
	"github.com/signalsfoundry/skyplot/angle"
)

// ISS elements, epoch 2021-10-02.
const (
	issLine1 = "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	issLine2 = "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"
)

func TestHorizonRadius_GEO(t *testing.T) {
	// A geostationary satellite sees out to roughly 81.3 degrees of arc.
	r, err := HorizonRadius(35786)
	if err != nil {
		t.Fatalf("HorizonRadius returned error: %v", err)
	}
	if got := r.Degrees(); math.Abs(got-81.3) > 0.05 {
		t.Fatalf("GEO horizon radius = %v deg, want ~81.3", got)
	}
}

func TestHorizonRadius_SurfaceIsZero(t *testing.T) {
	r, err := HorizonRadius(0)
	if err != nil {
		t.Fatalf("HorizonRadius(0) returned error: %v", err)
	}
	if got := r.Radians(); got != 0 {
		t.Fatalf("horizon radius at the surface = %v rad, want 0", got)
	}
}

func TestHorizonRadius_NegativeAltitude(t *testing.T) {
	if _, err := HorizonRadius(-1); !errors.Is(err, ErrAltitude) {
		t.Fatalf("error = %v, want ErrAltitude", err)
	}
}

func TestVisibilityRadius_ZeroMaskEqualsHorizon(t *testing.T) {
	vis, err := VisibilityRadius(550, angle.Degrees(0))
	if err != nil {
		t.Fatalf("VisibilityRadius returned error: %v", err)
	}
	hor, err := HorizonRadius(550)
	if err != nil {
		t.Fatalf("HorizonRadius returned error: %v", err)
	}
	if math.Abs(vis.Radians()-hor.Radians()) > 1e-12 {
		t.Fatalf("zero mask radius = %v, horizon radius = %v", vis.Radians(), hor.Radians())
	}
}

func TestVisibilityRadius_ShrinksWithMask(t *testing.T) {
	prev := math.Inf(1)
	for _, elev := range []float64{0, 10, 45, 80} {
		r, err := VisibilityRadius(550, angle.Degrees(elev))
		if err != nil {
			t.Fatalf("VisibilityRadius(elev=%v) returned error: %v", elev, err)
		}
		if r.Radians() >= prev {
			t.Fatalf("radius did not shrink at elevation %v: %v >= %v", elev, r.Radians(), prev)
		}
		prev = r.Radians()
	}

	overhead, err := VisibilityRadius(550, angle.Degrees(90))
	if err != nil {
		t.Fatalf("VisibilityRadius(elev=90) returned error: %v", err)
	}
	if math.Abs(overhead.Radians()) > 1e-12 {
		t.Fatalf("radius at 90 degree mask = %v rad, want 0", overhead.Radians())
	}
}

// elevationDeg mirrors the dot-product elevation check used across the
// ground segment tooling: 0 is the geometric horizon, 90 overhead.
func elevationDeg(obs, tgt [3]float64) float64 {
	v := [3]float64{tgt[0] - obs[0], tgt[1] - obs[1], tgt[2] - obs[2]}
	vn := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	rn := math.Sqrt(obs[0]*obs[0] + obs[1]*obs[1] + obs[2]*obs[2])
	cosG := (v[0]*obs[0] + v[1]*obs[1] + v[2]*obs[2]) / (vn * rn)
	if cosG > 1 {
		cosG = 1
	} else if cosG < -1 {
		cosG = -1
	}
	return 90 - math.Acos(cosG)*180/math.Pi
}

func TestVisibilityRadius_ElevationRoundTrip(t *testing.T) {
	// A site placed exactly at the visibility radius must see the
	// satellite at exactly the mask elevation.
	r, err := VisibilityRadius(550, angle.Degrees(10))
	if err != nil {
		t.Fatalf("VisibilityRadius returned error: %v", err)
	}
	psi := r.Radians()

	site := [3]float64{EarthRadiusKm * math.Cos(psi), EarthRadiusKm * math.Sin(psi), 0}
	sat := [3]float64{EarthRadiusKm + 550, 0, 0}

	if got := elevationDeg(site, sat); math.Abs(got-10) > 1e-9 {
		t.Fatalf("elevation at the radius = %v deg, want 10", got)
	}
}

func TestVisibilityRadius_BadElevation(t *testing.T) {
	for _, elev := range []float64{-1, 90.1, 181} {
		_, err := VisibilityRadius(550, angle.Degrees(elev))
		if !errors.Is(err, ErrElevation) {
			t.Fatalf("VisibilityRadius(elev=%v) error = %v, want ErrElevation", elev, err)
		}
	}
}

func TestFromTLE_ShortLines(t *testing.T) {
	if _, err := FromTLE("bogus", "lines"); !errors.Is(err, ErrTLE) {
		t.Fatalf("error = %v, want ErrTLE", err)
	}
}

func TestSubpoint_ISSNearEpoch(t *testing.T) {
	sat, err := FromTLE(issLine1, issLine2)
	if err != nil {
		t.Fatalf("FromTLE returned error: %v", err)
	}

	coord, altKm := sat.Subpoint(time.Date(2021, 10, 2, 14, 11, 0, 0, time.UTC))

	if altKm < 380 || altKm > 460 {
		t.Fatalf("ISS altitude = %v km, want roughly 420", altKm)
	}
	if lat := coord.Lat.Degrees(); math.Abs(lat) > 51.8 {
		t.Fatalf("ISS latitude = %v deg, beyond its orbital inclination", lat)
	}
	if lon := coord.Lon.Degrees(); lon < 0 || lon >= 360 {
		t.Fatalf("ISS longitude = %v deg, want [0, 360)", lon)
	}
}

func TestCoverage_VerticesAtVisibilityRadius(t *testing.T) {
	sat, err := FromTLE(issLine1, issLine2)
	if err != nil {
		t.Fatalf("FromTLE returned error: %v", err)
	}
	at := time.Date(2021, 10, 2, 14, 11, 0, 0, time.UTC)

	ring, err := sat.Coverage(at, angle.Degrees(10), skyplot.CircleOptions{Resolution: 60})
	if err != nil {
		t.Fatalf("Coverage returned error: %v", err)
	}
	if len(ring) != 60 {
		t.Fatalf("coverage ring has %d vertices, want 60", len(ring))
	}

	center, altKm := sat.Subpoint(at)
	want, err := VisibilityRadius(altKm, angle.Degrees(10))
	if err != nil {
		t.Fatalf("VisibilityRadius returned error: %v", err)
	}
	for i, v := range ring {
		vc := skyplot.Coord{Lon: angle.Degrees(v[0]), Lat: angle.Degrees(v[1])}
		sep := skyplot.Separation(center, vc).Degrees()
		if math.Abs(sep-want.Degrees()) > 1e-6 {
			t.Fatalf("vertex %d separation = %v deg, want %v", i, sep, want.Degrees())
		}
	}
}
