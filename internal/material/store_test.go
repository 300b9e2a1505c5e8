package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyResolves(t *testing.T) {
	s := NewStore()
	for _, r := range Rooms {
		for _, p := range Primitives {
			k := Key{p, r}
			set, ok := s.Set(k)
			require.True(t, ok, k.String())
			assert.Equal(t, k, set.Key())
			assert.NotEmpty(t, set.Title())
			assert.NotEmpty(t, set.Fields())
		}
	}
	_, ok := s.Set(Key{Cube, Room(4)})
	assert.False(t, ok)
}

func TestDefaultsWithinRange(t *testing.T) {
	s := NewStore()
	for _, rp := range s.Rooms() {
		for _, set := range rp.Sets() {
			for _, f := range set.Fields() {
				assert.True(t, f.InRange(), "%s.%s = %s outside [%v, %v]", set.Key(), f.Name, f, f.Min, f.Max)
				assert.LessOrEqual(t, f.Min, f.Max)
			}
		}
	}
}

func TestFieldsAreWellFormed(t *testing.T) {
	s := NewStore()
	for _, rp := range s.Rooms() {
		for _, set := range rp.Sets() {
			seen := map[string]bool{}
			for _, f := range set.Fields() {
				assert.False(t, seen[f.Name], "%s: duplicate field %s", set.Key(), f.Name)
				seen[f.Name] = true
				assert.NotEmpty(t, f.Uniform)
				assert.NotEmpty(t, f.Label)
				switch f.Kind {
				case Float:
					assert.NotNil(t, f.F)
					assert.Nil(t, f.I)
					assert.Nil(t, f.C)
				case Int:
					assert.NotNil(t, f.I)
					assert.Nil(t, f.F)
					assert.Nil(t, f.C)
				case Color:
					assert.NotNil(t, f.C)
					assert.Nil(t, f.F)
					assert.Nil(t, f.I)
				}
			}
		}
	}
}

func TestRoomsAreStructurallyDistinct(t *testing.T) {
	s := NewStore()
	names := func(set Set) []string {
		var out []string
		for _, f := range set.Fields() {
			out = append(out, f.Name)
		}
		return out
	}
	assert.Equal(t, []string{"noiseScale", "noiseAmplitude", "baseColor"}, names(&s.Room1.Cube))
	assert.Equal(t, []string{"noiseScale", "noiseIntensity", "lacunarity", "octaves", "baseColor"}, names(&s.Room2.Sphere))
	assert.Equal(t, []string{"noiseScale", "noiseIntensity", "baseColor", "minAlpha", "maxAlpha"}, names(&s.Room3.Cube))
}

func TestFieldWritesReachTheStore(t *testing.T) {
	s := NewStore()
	f, err := s.Lookup("room1.cube.noiseScale")
	require.NoError(t, err)
	assert.Equal(t, float32(2), *f.F)

	require.True(t, f.SetFloat(4.5))
	assert.Equal(t, float32(4.5), s.Room1.Cube.NoiseScale)

	// Fresh descriptors see the same memory.
	set, _ := s.Set(Key{Cube, Room1})
	assert.Equal(t, float32(4.5), *set.Fields()[0].F)
}

func TestSettersClamp(t *testing.T) {
	s := NewStore()

	scale, _ := s.Lookup("room1.cube.noiseScale")
	scale.SetFloat(99)
	assert.Equal(t, float32(5), s.Room1.Cube.NoiseScale)
	scale.SetFloat(-1)
	assert.Equal(t, float32(0.1), s.Room1.Cube.NoiseScale)

	octaves, _ := s.Lookup("room2.sphere.octaves")
	assert.True(t, octaves.SetInt(20))
	assert.Equal(t, int32(8), s.Room2.Sphere.Octaves)
	assert.False(t, octaves.SetFloat(3))

	color, _ := s.Lookup("room3.sphere.baseColor")
	assert.True(t, color.SetColor([3]float32{2, -1, 0.25}))
	assert.Equal(t, [3]float32{1, 0, 0.25}, s.Room3.Sphere.BaseColor)
	assert.False(t, color.SetInt(1))
}

func TestSettersRejectNaN(t *testing.T) {
	s := NewStore()
	nan := float32(math.NaN())

	scale, _ := s.Lookup("room1.cube.noiseScale")
	assert.False(t, scale.SetFloat(nan))
	assert.Equal(t, float32(2), s.Room1.Cube.NoiseScale)
	assert.True(t, scale.InRange())

	color, _ := s.Lookup("room1.cube.baseColor")
	assert.False(t, color.SetColor([3]float32{nan, 0, 0}))
	assert.Equal(t, [3]float32{1, 1, 0}, s.Room1.Cube.BaseColor)
	assert.True(t, color.InRange())
}

func TestInRangeFlagsNaN(t *testing.T) {
	s := NewStore()
	nan := float32(math.NaN())

	s.Room1.Cube.NoiseScale = nan
	scale, _ := s.Lookup("room1.cube.noiseScale")
	assert.False(t, scale.InRange())

	s.Room1.Cube.BaseColor = [3]float32{nan, 0, 0}
	color, _ := s.Lookup("room1.cube.baseColor")
	assert.False(t, color.InRange())
}

func TestLookupErrors(t *testing.T) {
	s := NewStore()
	for _, p := range []string{"", "room1.cube", "room4.cube.noiseScale", "room1.cone.noiseScale", "room1.cube.nope"} {
		_, err := s.Lookup(p)
		assert.ErrorIs(t, err, ErrUnknownPath, p)
	}
}

func TestPathsCoverEveryField(t *testing.T) {
	s := NewStore()
	paths := s.Paths()
	assert.Contains(t, paths, "room1.cube.noiseScale")
	assert.Contains(t, paths, "room3.pyramid.alpha")
	for _, p := range paths {
		_, err := s.Lookup(p)
		assert.NoError(t, err, p)
	}
}

func TestFieldString(t *testing.T) {
	s := NewStore()
	f, _ := s.Lookup("room2.sphere.octaves")
	assert.Equal(t, "4", f.String())
	f, _ = s.Lookup("room1.cube.baseColor")
	assert.Equal(t, "1.000 1.000 0.000", f.String())
}
