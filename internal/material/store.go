package material

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Room identifies one of the three rooms. It keys both the parameter store and the shading variant table.
type Room int

const (
	Room1 Room = iota + 1
	Room2
	Room3
)

// Rooms lists every room in order.
var Rooms = []Room{Room1, Room2, Room3}

func (r Room) String() string { return "room" + strconv.Itoa(int(r)) }

// Valid reports whether r is one of Room1..Room3.
func (r Room) Valid() bool { return r >= Room1 && r <= Room3 }

// Primitive identifies a procedurally shaded object kind.
type Primitive int

const (
	Cube Primitive = iota
	Sphere
	Pyramid
)

// Primitives lists every primitive in order.
var Primitives = []Primitive{Cube, Sphere, Pyramid}

var primitiveNames = [...]string{"cube", "sphere", "pyramid"}

func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return fmt.Sprintf("primitive(%d)", int(p))
	}
	return primitiveNames[p]
}

// Key selects one (primitive, room) combination.
type Key struct {
	Primitive Primitive
	Room      Room
}

func (k Key) String() string { return k.Room.String() + "." + k.Primitive.String() }

// Set is one parameter set. Fields returns descriptors bound to the set's live values, so edits made
// through a Field are visible to every later reader.
type Set interface {
	Key() Key
	Title() string
	Fields() []Field
}

// RoomParams is one room's parameter sets. Each room has its own shape.
type RoomParams interface {
	Room() Room
	Sets() []Set
}

// Room1Params holds room 1's amplitude-based Perlin tuning.
type Room1Params struct {
	Cube    Room1Cube
	Sphere  Room1Sphere
	Pyramid Room1Pyramid
}

func (p *Room1Params) Room() Room  { return Room1 }
func (p *Room1Params) Sets() []Set { return []Set{&p.Cube, &p.Sphere, &p.Pyramid} }

// Room2Params holds room 2's lacunarity/octave multifractal tuning.
type Room2Params struct {
	Cube    Room2Cube
	Sphere  Room2Sphere
	Pyramid Room2Pyramid
}

func (p *Room2Params) Room() Room  { return Room2 }
func (p *Room2Params) Sets() []Set { return []Set{&p.Cube, &p.Sphere, &p.Pyramid} }

// Room3Params holds room 3's alpha-blend and normal-perturbation tuning.
type Room3Params struct {
	Cube    Room3Cube
	Sphere  Room3Sphere
	Pyramid Room3Pyramid
}

func (p *Room3Params) Room() Room  { return Room3 }
func (p *Room3Params) Sets() []Set { return []Set{&p.Cube, &p.Sphere, &p.Pyramid} }

// Store owns every parameter set. It is a plain value container: range clamping happens in Field setters
// used by the UI and console. It is not safe for concurrent use; the frame loop writes (UI phase)
// and reads (render phase) it sequentially on one goroutine.
type Store struct {
	Room1 Room1Params
	Room2 Room2Params
	Room3 Room3Params
}

// NewStore returns a store holding the default value of every field.
func NewStore() *Store {
	return &Store{
		Room1: Room1Params{
			Cube:    Room1Cube{NoiseScale: 2, NoiseAmplitude: 0.5, BaseColor: [3]float32{1, 1, 0}},
			Sphere:  Room1Sphere{NoiseScale: 2, NoiseOffset: 0.5, NoiseIntensity: 0.5, BaseColor: [3]float32{0.8, 0.2, 0.2}},
			Pyramid: Room1Pyramid{NoiseTurbulence: 3, NoiseGlow: 0.3, ColorMix: 0.5, BaseColor1: [3]float32{1, 0.3, 0}, BaseColor2: [3]float32{1, 0.8, 0}},
		},
		Room2: Room2Params{
			Cube:    Room2Cube{NoiseScale: 2, NoiseIntensity: 0.4, BaseColor: [3]float32{0.5, 0, 0.8}},
			Sphere:  Room2Sphere{NoiseScale: 2, NoiseIntensity: 0.5, Lacunarity: 2, Octaves: 4, BaseColor: [3]float32{0.2, 0.5, 0.8}},
			Pyramid: Room2Pyramid{NoiseScale: 3, NoiseIntensity: 0.5, EdgeThreshold: 0.1, GlowStrength: 0.5, BaseColor1: [3]float32{0.7, 0.2, 0.8}, BaseColor2: [3]float32{0.2, 0.8, 0.7}},
		},
		Room3: Room3Params{
			Cube:    Room3Cube{NoiseScale: 2, NoiseIntensity: 0.5, BaseColor: [3]float32{0.3, 0.6, 0.9}, MinAlpha: 0.2, MaxAlpha: 0.8},
			Sphere:  Room3Sphere{NoiseScale: 3, NormalStrength: 0.5, BaseColor: [3]float32{0.8, 0.2, 0.2}, Glossiness: 64},
			Pyramid: Room3Pyramid{NoiseScale: 4, NormalStrength: 0.8, BaseColor: [3]float32{0.9, 0.6, 0.2}, Alpha: 0.6},
		},
	}
}

// Rooms returns the per-room parameter groups in room order.
func (s *Store) Rooms() []RoomParams {
	return []RoomParams{&s.Room1, &s.Room2, &s.Room3}
}

// Set returns the parameter set for k.
func (s *Store) Set(k Key) (Set, bool) {
	for _, rp := range s.Rooms() {
		if rp.Room() != k.Room {
			continue
		}
		for _, set := range rp.Sets() {
			if set.Key() == k {
				return set, true
			}
		}
	}
	return nil, false
}

// ErrUnknownPath is returned by Lookup for paths that name no field.
var ErrUnknownPath = errors.New("unknown parameter")

// Lookup resolves a "room.primitive.field" path such as "room1.cube.noiseScale".
func (s *Store) Lookup(path string) (Field, error) {
	parts := strings.Split(path, ".")
	if len(parts) != 3 {
		return Field{}, fmt.Errorf("%w: %q (want room.primitive.field)", ErrUnknownPath, path)
	}
	for _, rp := range s.Rooms() {
		if rp.Room().String() != parts[0] {
			continue
		}
		for _, set := range rp.Sets() {
			if set.Key().Primitive.String() != parts[1] {
				continue
			}
			for _, f := range set.Fields() {
				if f.Name == parts[2] {
					return f, nil
				}
			}
		}
	}
	return Field{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
}

// Paths lists every field path in store order.
func (s *Store) Paths() []string {
	var out []string
	for _, rp := range s.Rooms() {
		for _, set := range rp.Sets() {
			for _, f := range set.Fields() {
				out = append(out, set.Key().String()+"."+f.Name)
			}
		}
	}
	return out
}
