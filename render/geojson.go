package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CircleFeature wraps an outline ring as a GeoJSON Polygon feature.
// Generated rings are open, while GeoJSON requires the first position
// repeated at the end, so the ring is closed here on the way out. props
// pass through as the feature's styling properties; nil is fine.
func CircleFeature(ring orb.Ring, props map[string]interface{}) *geojson.Feature {
	closed := make(orb.Ring, 0, len(ring)+1)
	closed = append(closed, ring...)
	if len(closed) > 0 && !closed.Closed() {
		closed = append(closed, closed[0])
	}
	f := geojson.NewFeature(orb.Polygon{closed})
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}

// FeatureCollection bundles features for export.
func FeatureCollection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	return fc
}
