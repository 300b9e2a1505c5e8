package material

// Room1Cube tunes room 1's cube: Perlin noise summed over octaves.
type Room1Cube struct {
	NoiseScale     float32
	NoiseAmplitude float32
	BaseColor      [3]float32
}

func (p *Room1Cube) Key() Key      { return Key{Cube, Room1} }
func (p *Room1Cube) Title() string { return "Cube (Perlin noise with octaves)" }
func (p *Room1Cube) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Cube Noise Scale", &p.NoiseScale, 0.1, 5),
		floatField("noiseAmplitude", "Cube Noise Amplitude", &p.NoiseAmplitude, 0, 1),
		colorField("baseColor", "Cube Color", &p.BaseColor),
	}
}

// Room1Sphere tunes room 1's sphere: single-octave Perlin noise.
type Room1Sphere struct {
	NoiseScale     float32
	NoiseOffset    float32
	NoiseIntensity float32
	BaseColor      [3]float32
}

func (p *Room1Sphere) Key() Key      { return Key{Sphere, Room1} }
func (p *Room1Sphere) Title() string { return "Sphere (simple Perlin noise)" }
func (p *Room1Sphere) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Sphere Noise Scale", &p.NoiseScale, 0.1, 5),
		floatField("noiseOffset", "Sphere Noise Offset", &p.NoiseOffset, 0, 1),
		floatField("noiseIntensity", "Sphere Noise Intensity", &p.NoiseIntensity, 0, 1),
		colorField("baseColor", "Sphere Color", &p.BaseColor),
	}
}

// Room1Pyramid tunes room 1's pyramid: turbulent Perlin noise blending two colors.
type Room1Pyramid struct {
	NoiseTurbulence float32
	NoiseGlow       float32
	ColorMix        float32
	BaseColor1      [3]float32
	BaseColor2      [3]float32
}

func (p *Room1Pyramid) Key() Key      { return Key{Pyramid, Room1} }
func (p *Room1Pyramid) Title() string { return "Pyramid (Perlin noise with turbulence)" }
func (p *Room1Pyramid) Fields() []Field {
	return []Field{
		floatField("noiseTurbulence", "Pyramid Turbulence", &p.NoiseTurbulence, 0.1, 10),
		floatField("noiseGlow", "Pyramid Glow", &p.NoiseGlow, 0, 1),
		floatField("colorMix", "Pyramid Color Mix", &p.ColorMix, 0, 1),
		colorField("baseColor1", "Pyramid Color 1", &p.BaseColor1),
		colorField("baseColor2", "Pyramid Color 2", &p.BaseColor2),
	}
}

// Room2Cube tunes room 2's cube: simplex noise.
type Room2Cube struct {
	NoiseScale     float32
	NoiseIntensity float32
	BaseColor      [3]float32
}

func (p *Room2Cube) Key() Key      { return Key{Cube, Room2} }
func (p *Room2Cube) Title() string { return "Cube (simplex noise)" }
func (p *Room2Cube) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Cube Noise Scale", &p.NoiseScale, 0.1, 5),
		floatField("noiseIntensity", "Cube Noise Intensity", &p.NoiseIntensity, 0, 1),
		colorField("baseColor", "Cube Color", &p.BaseColor),
	}
}

// Room2Sphere tunes room 2's sphere: multifractal noise.
type Room2Sphere struct {
	NoiseScale     float32
	NoiseIntensity float32
	Lacunarity     float32
	Octaves        int32
	BaseColor      [3]float32
}

func (p *Room2Sphere) Key() Key      { return Key{Sphere, Room2} }
func (p *Room2Sphere) Title() string { return "Sphere (multifractal noise)" }
func (p *Room2Sphere) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Sphere Noise Scale", &p.NoiseScale, 0.1, 5),
		floatField("noiseIntensity", "Sphere Noise Intensity", &p.NoiseIntensity, 0, 1),
		floatField("lacunarity", "Sphere Lacunarity", &p.Lacunarity, 1, 4),
		intField("octaves", "Sphere Octaves", &p.Octaves, 1, 8),
		colorField("baseColor", "Sphere Color", &p.BaseColor),
	}
}

// Room2Pyramid tunes room 2's pyramid: cellular noise with glowing cell edges.
type Room2Pyramid struct {
	NoiseScale     float32
	NoiseIntensity float32
	EdgeThreshold  float32
	GlowStrength   float32
	BaseColor1     [3]float32
	BaseColor2     [3]float32
}

func (p *Room2Pyramid) Key() Key      { return Key{Pyramid, Room2} }
func (p *Room2Pyramid) Title() string { return "Pyramid (cellular noise)" }
func (p *Room2Pyramid) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Pyramid Noise Scale", &p.NoiseScale, 1, 10),
		floatField("noiseIntensity", "Pyramid Noise Intensity", &p.NoiseIntensity, 0, 1),
		floatField("edgeThreshold", "Pyramid Edge Threshold", &p.EdgeThreshold, 0.01, 0.2),
		floatField("glowStrength", "Pyramid Glow Strength", &p.GlowStrength, 0, 1),
		colorField("baseColor1", "Pyramid Color 1", &p.BaseColor1),
		colorField("baseColor2", "Pyramid Color 2", &p.BaseColor2),
	}
}

// Room3Cube tunes room 3's cube: Perlin noise driving transparency.
type Room3Cube struct {
	NoiseScale     float32
	NoiseIntensity float32
	BaseColor      [3]float32
	MinAlpha       float32
	MaxAlpha       float32
}

func (p *Room3Cube) Key() Key      { return Key{Cube, Room3} }
func (p *Room3Cube) Title() string { return "Cube (Perlin noise on transparency)" }
func (p *Room3Cube) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Cube Noise Scale", &p.NoiseScale, 0.1, 5),
		floatField("noiseIntensity", "Cube Noise Intensity", &p.NoiseIntensity, 0, 1),
		colorField("baseColor", "Cube Color", &p.BaseColor),
		floatField("minAlpha", "Cube Min Alpha", &p.MinAlpha, 0, 1),
		floatField("maxAlpha", "Cube Max Alpha", &p.MaxAlpha, 0, 1),
	}
}

// Room3Sphere tunes room 3's sphere: Perlin noise perturbing normals under a glossy highlight.
type Room3Sphere struct {
	NoiseScale     float32
	NormalStrength float32
	BaseColor      [3]float32
	Glossiness     float32
}

func (p *Room3Sphere) Key() Key      { return Key{Sphere, Room3} }
func (p *Room3Sphere) Title() string { return "Sphere (Perlin noise on normals)" }
func (p *Room3Sphere) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Sphere Noise Scale", &p.NoiseScale, 0.1, 10),
		floatField("normalStrength", "Sphere Normal Strength", &p.NormalStrength, 0, 2),
		colorField("baseColor", "Sphere Color", &p.BaseColor),
		floatField("glossiness", "Sphere Glossiness", &p.Glossiness, 1, 128),
	}
}

// Room3Pyramid tunes room 3's pyramid: perturbed normals on a translucent surface.
type Room3Pyramid struct {
	NoiseScale     float32
	NormalStrength float32
	BaseColor      [3]float32
	Alpha          float32
}

func (p *Room3Pyramid) Key() Key      { return Key{Pyramid, Room3} }
func (p *Room3Pyramid) Title() string { return "Pyramid (translucent, Perlin noise on normals)" }
func (p *Room3Pyramid) Fields() []Field {
	return []Field{
		floatField("noiseScale", "Pyramid Noise Scale", &p.NoiseScale, 0.1, 10),
		floatField("normalStrength", "Pyramid Normal Strength", &p.NormalStrength, 0, 2),
		colorField("baseColor", "Pyramid Color", &p.BaseColor),
		floatField("alpha", "Pyramid Alpha", &p.Alpha, 0, 1),
	}
}
