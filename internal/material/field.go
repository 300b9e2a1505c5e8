package material

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Kind is the value shape of a Field.
type Kind int

const (
	Float Kind = iota
	Int
	Color
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case Color:
		return "color"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Field describes one tuning knob of a parameter set and points at its live value.
// Uniform is the shader uniform the value is bound to. Min and Max are inclusive; for colors
// they bound every channel. Exactly one of F, I and C is non-nil, matching Kind.
type Field struct {
	Name    string // path segment, e.g. "noiseScale"
	Label   string // panel label, e.g. "Cube Noise Scale"
	Uniform string
	Kind    Kind
	Min     float32
	Max     float32

	F *float32
	I *int32
	C *[3]float32
}

func floatField(name, label string, v *float32, lo, hi float32) Field {
	return Field{Name: name, Label: label, Uniform: name, Kind: Float, Min: lo, Max: hi, F: v}
}

func intField(name, label string, v *int32, lo, hi int32) Field {
	return Field{Name: name, Label: label, Uniform: name, Kind: Int, Min: float32(lo), Max: float32(hi), I: v}
}

func colorField(name, label string, v *[3]float32) Field {
	return Field{Name: name, Label: label, Uniform: name, Kind: Color, Min: 0, Max: 1, C: v}
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

// SetFloat stores v clamped to the field's range. It returns false, leaving the value untouched, if
// the field is not a Float or v is NaN.
func (f Field) SetFloat(v float32) bool {
	if f.Kind != Float || math32.IsNaN(v) {
		return false
	}
	*f.F = clamp(v, f.Min, f.Max)
	return true
}

// SetInt stores v clamped to the field's range. It returns false if the field is not an Int.
func (f Field) SetInt(v int32) bool {
	if f.Kind != Int {
		return false
	}
	*f.I = int32(clamp(float32(v), f.Min, f.Max))
	return true
}

// SetColor stores c with every channel clamped to the field's range. It returns false, leaving the
// value untouched, if the field is not a Color or any channel is NaN.
func (f Field) SetColor(c [3]float32) bool {
	if f.Kind != Color {
		return false
	}
	for i := range c {
		if math32.IsNaN(c[i]) {
			return false
		}
		c[i] = clamp(c[i], f.Min, f.Max)
	}
	*f.C = c
	return true
}

// InRange reports whether the live value lies within [Min, Max].
func (f Field) InRange() bool {
	switch f.Kind {
	case Float:
		return *f.F >= f.Min && *f.F <= f.Max
	case Int:
		return float32(*f.I) >= f.Min && float32(*f.I) <= f.Max
	case Color:
		for _, c := range f.C {
			if !(c >= f.Min && c <= f.Max) {
				return false
			}
		}
		return true
	}
	return false
}

// String formats the live value.
func (f Field) String() string {
	switch f.Kind {
	case Float:
		return fmt.Sprintf("%.3f", *f.F)
	case Int:
		return fmt.Sprintf("%d", *f.I)
	case Color:
		return fmt.Sprintf("%.3f %.3f %.3f", f.C[0], f.C[1], f.C[2])
	}
	return "?"
}
