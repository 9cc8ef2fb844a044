// Package angle provides angular quantities tagged with their unit.
package angle

import (
	"fmt"
	"math"
	"strings"
)

// Unit identifies an angular unit.
type Unit int

// Degree is the zero value, so option structs that leave their unit unset
// default to degrees.
const (
	Degree Unit = iota
	Radian
)

// String returns the short name of the unit.
func (u Unit) String() string {
	switch u {
	case Degree:
		return "deg"
	case Radian:
		return "rad"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// UnitError reports an angular unit the package does not recognise.
type UnitError struct {
	Name string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("angle: unknown unit %q", e.Name)
}

// Angle is a magnitude tagged with the unit it was constructed in.
// The zero value is 0 degrees.
type Angle struct {
	value float64
	unit  Unit
}

// Degrees returns an angle of v degrees.
func Degrees(v float64) Angle { return Angle{value: v, unit: Degree} }

// Radians returns an angle of v radians.
func Radians(v float64) Angle { return Angle{value: v, unit: Radian} }

// Degrees returns the magnitude of a in degrees. An angle constructed in
// degrees is returned unchanged, not round-tripped through radians.
func (a Angle) Degrees() float64 {
	if a.unit == Radian {
		return a.value * 180 / math.Pi
	}
	return a.value
}

// Radians returns the magnitude of a in radians.
func (a Angle) Radians() float64 {
	if a.unit == Degree {
		return a.value * math.Pi / 180
	}
	return a.value
}

// In returns the magnitude of a expressed in u.
func (a Angle) In(u Unit) (float64, error) {
	switch u {
	case Degree:
		return a.Degrees(), nil
	case Radian:
		return a.Radians(), nil
	}
	return 0, &UnitError{Name: u.String()}
}

// String renders the magnitude with its unit suffix.
func (a Angle) String() string {
	return fmt.Sprintf("%g %s", a.value, a.unit)
}

// ParseUnit resolves a unit name such as "deg" or "radians".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degree, nil
	case "rad", "radian", "radians":
		return Radian, nil
	}
	return 0, &UnitError{Name: s}
}
