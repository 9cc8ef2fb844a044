package main

// brightStars is a small first-magnitude catalogue for chart context,
// J2000 positions in degrees.
var brightStars = []struct {
	name   string
	raDeg  float64
	decDeg float64
}{
	{"Sirius", 101.29, -16.72},
	{"Canopus", 95.99, -52.70},
	{"Arcturus", 213.92, 19.18},
	{"Vega", 279.23, 38.78},
	{"Capella", 79.17, 46.00},
	{"Rigel", 78.63, -8.20},
	{"Procyon", 114.83, 5.22},
	{"Betelgeuse", 88.79, 7.41},
	{"Achernar", 24.43, -57.24},
	{"Altair", 297.70, 8.87},
	{"Aldebaran", 68.98, 16.51},
	{"Antares", 247.35, -26.43},
	{"Spica", 201.30, -11.16},
	{"Pollux", 116.33, 28.03},
	{"Fomalhaut", 344.41, -29.62},
	{"Deneb", 310.36, 45.28},
	{"Polaris", 37.95, 89.26},
}
