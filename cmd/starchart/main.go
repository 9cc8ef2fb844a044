package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/paulmach/orb"
	"github.com/signalsfoundry/skyplot"
	"github.com/signalsfoundry/skyplot/angle"
	"github.com/signalsfoundry/skyplot/ephem"
	"github.com/signalsfoundry/skyplot/footprint"
	"github.com/signalsfoundry/skyplot/internal/logging"
	"github.com/signalsfoundry/skyplot/render"
)

// ISS elements, epoch 2021-10-02. Override with -tle1/-tle2 for anything
// fresher.
const (
	issLine1 = "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990"
	issLine2 = "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760"
)

func main() {
	skyPath := flag.String("sky", "sky.png", "output path for the equatorial sky chart")
	coveragePath := flag.String("coverage", "coverage.png", "output path for the ground coverage map")
	geojsonPath := flag.String("geojson", "", "optional output path for coverage rings as GeoJSON")
	scenarioPath := flag.String("scenario", "", "optional JSON chart scenario drawn onto the coverage map")
	width := flag.Int("width", 1440, "chart width in pixels")
	height := flag.Int("height", 720, "chart height in pixels")
	atFlag := flag.String("time", "", "chart epoch as RFC3339 (default: now)")
	tle1Flag := flag.String("tle1", "", "satellite TLE line 1 (default: built-in ISS elements)")
	tle2Flag := flag.String("tle2", "", "satellite TLE line 2")
	minElev := flag.Float64("min-elevation", 10, "coverage elevation mask in degrees")
	avoidance := flag.Float64("sun-avoidance", 30, "solar avoidance radius in degrees")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	at := time.Now().UTC()
	if *atFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fatal(ctx, log, "invalid -time value", err)
		}
		at = parsed.UTC()
	}

	log.Info(ctx, "rendering charts",
		logging.String("epoch", at.Format(time.RFC3339)),
		logging.Int("width", *width),
		logging.Int("height", *height),
	)

	// ==== Equatorial sky chart: bright stars + solar avoidance ====

	sky := render.NewCanvas(*width, *height, render.CanvasOptions{
		Background: color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff},
	})
	sky.Grid(30, 15, color.RGBA{R: 0x2a, G: 0x2e, B: 0x3c, A: 0xff})

	for _, s := range brightStars {
		p := orb.Point{s.raDeg, s.decDeg}
		sky.Marker(p, 2.5, color.White)
		sky.Label(p, s.name, color.RGBA{R: 0x9a, G: 0xa4, B: 0xc0, A: 0xff})
	}

	sunRing, err := ephem.AvoidanceCircle(at, angle.Degrees(*avoidance), skyplot.CircleOptions{Resolution: 180})
	if err != nil {
		fatal(ctx, log, "failed to build the solar avoidance circle", err)
	}
	sky.Polygon(sunRing, render.Style{
		Fill:      color.RGBA{R: 0xff, G: 0xb3, B: 0x00, A: 0x28},
		Edge:      color.RGBA{R: 0xff, G: 0xb3, B: 0x00, A: 0xff},
		LineWidth: 2,
	})
	sun := ephem.SunEquatorial(at)
	sky.Marker(orb.Point{sun.Lon.Degrees(), sun.Lat.Degrees()}, 6, color.RGBA{R: 0xff, G: 0xd7, A: 0xff})

	if err := sky.SavePNG(*skyPath); err != nil {
		fatal(ctx, log, "failed to write the sky chart", err)
	}
	fmt.Printf("Wrote %s: %d stars, sun at RA %.1f dec %.1f, avoidance radius %.0f deg\n",
		*skyPath, len(brightStars), sun.Lon.Degrees(), sun.Lat.Degrees(), *avoidance)

	// ==== Ground coverage map: satellite footprint + ground site ====

	tle1, tle2 := issLine1, issLine2
	if *tle1Flag != "" || *tle2Flag != "" {
		if *tle1Flag == "" || *tle2Flag == "" {
			fatal(ctx, log, "both -tle1 and -tle2 are required", fmt.Errorf("only one element line given"))
		}
		tle1, tle2 = *tle1Flag, *tle2Flag
	}
	sat, err := footprint.FromTLE(tle1, tle2)
	if err != nil {
		fatal(ctx, log, "failed to parse TLE", err)
	}

	coverage := render.NewCanvas(*width, *height, render.CanvasOptions{})
	coverage.Grid(30, 15, color.RGBA{R: 0xd8, G: 0xd8, B: 0xd8, A: 0xff})

	subpoint, altKm := sat.Subpoint(at)

	horizonRing, err := sat.Coverage(at, angle.Degrees(0), skyplot.CircleOptions{Resolution: 180})
	if err != nil {
		fatal(ctx, log, "failed to build the horizon ring", err)
	}
	coverage.Polygon(horizonRing, render.Style{Edge: color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}})

	maskRing, err := sat.Coverage(at, angle.Degrees(*minElev), skyplot.CircleOptions{Resolution: 180})
	if err != nil {
		fatal(ctx, log, "failed to build the coverage ring", err)
	}
	coverage.Polygon(maskRing, render.Style{
		Fill:      color.RGBA{R: 0x22, G: 0x55, B: 0xcc, A: 0x30},
		Edge:      color.RGBA{R: 0x22, G: 0x55, B: 0xcc, A: 0xff},
		LineWidth: 2,
	})

	sub := orb.Point{subpoint.Lon.Degrees(), subpoint.Lat.Degrees()}
	coverage.Marker(sub, 4, color.RGBA{R: 0xcc, G: 0x22, B: 0x22, A: 0xff})
	coverage.Label(sub, "ISS", color.RGBA{R: 0xcc, G: 0x22, B: 0x22, A: 0xff})

	// A fixed equatorial ground site with the same elevation mask, sized
	// for satellites at the current pass altitude.
	site := skyplot.Coord{Lon: angle.Degrees(0), Lat: angle.Degrees(0)}
	siteRadius, err := footprint.VisibilityRadius(altKm, angle.Degrees(*minElev))
	if err != nil {
		fatal(ctx, log, "failed to size the ground site circle", err)
	}
	siteRing, err := skyplot.Circle(site, siteRadius, skyplot.CircleOptions{Resolution: 180})
	if err != nil {
		fatal(ctx, log, "failed to build the ground site circle", err)
	}
	coverage.Polygon(siteRing, render.Style{Edge: color.RGBA{R: 0x22, G: 0xaa, B: 0x55, A: 0xff}, LineWidth: 2})
	gs := orb.Point{0, 0}
	coverage.Marker(gs, 3, color.RGBA{R: 0x22, G: 0xaa, B: 0x55, A: 0xff})
	coverage.Label(gs, "Equator-GS", color.RGBA{R: 0x22, G: 0xaa, B: 0x55, A: 0xff})

	subsolar := ephem.SubsolarPoint(at)
	sp := orb.Point{subsolar.Lon.Degrees(), subsolar.Lat.Degrees()}
	coverage.Marker(sp, 5, color.RGBA{R: 0xff, G: 0xb3, A: 0xff})
	coverage.Label(sp, "subsolar", color.RGBA{R: 0xb8, G: 0x86, A: 0xff})

	if *scenarioPath != "" {
		f, err := os.Open(*scenarioPath)
		if err != nil {
			fatal(ctx, log, "failed to open the chart scenario", err)
		}
		summary, err := render.LoadChart(coverage, f)
		f.Close()
		if err != nil {
			fatal(ctx, log, "failed to load the chart scenario", err)
		}
		fmt.Printf("Loaded chart scenario: %d circles, %d markers\n", summary.Circles, summary.Markers)
	}

	if err := coverage.SavePNG(*coveragePath); err != nil {
		fatal(ctx, log, "failed to write the coverage map", err)
	}
	fmt.Printf("Wrote %s: subpoint (%.1f, %.1f), altitude %.0f km, mask %.0f deg\n",
		*coveragePath, subpoint.Lon.Degrees(), subpoint.Lat.Degrees(), altKm, *minElev)

	// ==== Optional GeoJSON export of the coverage rings ====

	if *geojsonPath != "" {
		fc := render.FeatureCollection(
			render.CircleFeature(horizonRing, map[string]interface{}{
				"name":   "iss-horizon",
				"stroke": "#888888",
			}),
			render.CircleFeature(maskRing, map[string]interface{}{
				"name":              "iss-coverage",
				"stroke":            "#2255cc",
				"fill":              "#2255cc",
				"fill-opacity":      0.2,
				"min_elevation_deg": *minElev,
			}),
			render.CircleFeature(siteRing, map[string]interface{}{
				"name":   "equator-gs",
				"stroke": "#22aa55",
			}),
		)
		data, err := json.MarshalIndent(fc, "", "  ")
		if err != nil {
			fatal(ctx, log, "failed to marshal GeoJSON", err)
		}
		if err := os.WriteFile(*geojsonPath, data, 0o644); err != nil {
			fatal(ctx, log, "failed to write GeoJSON", err)
		}
		fmt.Printf("Wrote %s: 3 features\n", *geojsonPath)
	}
}

func fatal(ctx context.Context, log logging.Logger, msg string, err error) {
	log.Error(ctx, msg, logging.String("error", err.Error()))
	os.Exit(1)
}
