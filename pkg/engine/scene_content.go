package engine

import (
	"fmt"
	"math"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/util"
)

// SceneContent is the contract the render loop requires of scene
// visuals: a per-frame update driven by elapsed time and global
// progress, a depth query for focus highlighting, and explicit disposal.
type SceneContent interface {
	Update(elapsed, progress float64)
	NearestAtDepth(depth, threshold float64) *SceneObject
	Dispose()
}

// PropertyInfo is the opaque payload attached to showcase objects,
// surfaced when an object gains focus.
type PropertyInfo struct {
	Name     string
	Location string
	PriceUSD int
	AreaSqFt int
}

// SceneObject is one visible object with its property payload.
type SceneObject struct {
	Mesh     *Mesh
	Property *PropertyInfo

	baseY float64
	phase float64
}

// Atmosphere is the fog and clear-color setting for a point in the
// journey.
type Atmosphere struct {
	ClearColor [3]float32
	FogColor   [3]float32
	FogDensity float32
}

// ShowcaseScene is the portfolio's 3D content: a procedurally laid out
// strip of towers and pavilions along the camera path, one cluster per
// narrative scene, with per-scene atmosphere blended as the user scrolls.
type ShowcaseScene struct {
	scenes  *SceneMap
	objects []*SceneObject
	ground  *Mesh
	atmos   []Atmosphere
}

// towerPalette cycles across clusters
var towerPalette = [][3]float32{
	{0.72, 0.68, 0.62},
	{0.58, 0.62, 0.66},
	{0.66, 0.60, 0.54},
	{0.52, 0.56, 0.60},
}

// NewShowcaseScene builds the portfolio content for the given scene map.
// Geometry is deterministic: the same map always yields the same layout.
func NewShowcaseScene(scenes *SceneMap) *ShowcaseScene {
	s := &ShowcaseScene{
		scenes: scenes,
		ground: NewBoxMesh("ground", 120, 0.5, 140, [3]float32{0.16, 0.17, 0.19}),
	}
	s.ground.Position = Vector3{Y: -0.25, Z: -10}

	s.buildClusters()
	s.buildAtmospheres()
	return s
}

// buildClusters places a small cluster of properties per scene, spread
// along -Z so each cluster sits in front of the camera during its scene.
func (s *ShowcaseScene) buildClusters() {
	defs := s.scenes.Scenes()
	for _, def := range defs {
		// Cluster center depth tracks the scene's midpoint along the path.
		mid := (def.Start + def.End) / 2
		centerZ := util.Lerp(20, -40, mid)

		for i := 0; i < 3; i++ {
			h := 6 + float64((def.Index*3+i)*7%9)
			w := 2.5 + float64(i)*0.8
			color := towerPalette[(def.Index+i)%len(towerPalette)]

			mesh := NewBoxMesh(fmt.Sprintf("%s-tower-%d", def.Label, i), w, h, w, color)
			mesh.Position = Vector3{
				X: float64(i-1) * 7,
				Y: h / 2,
				Z: centerZ + float64(i-1)*3,
			}

			s.objects = append(s.objects, &SceneObject{
				Mesh: mesh,
				Property: &PropertyInfo{
					Name:     fmt.Sprintf("Residence %c-%d", 'A'+def.Index, i+1),
					Location: def.Label,
					PriceUSD: 850000 + (def.Index*3+i)*215000,
					AreaSqFt: 1400 + (def.Index*3+i)*380,
				},
				baseY: h / 2,
				phase: float64(def.Index*3+i) * 1.3,
			})
		}
	}
}

// buildAtmospheres assigns one atmosphere per scene, warm at the hero
// and cooling toward the footer.
func (s *ShowcaseScene) buildAtmospheres() {
	n := s.scenes.Len()
	s.atmos = make([]Atmosphere, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		s.atmos[i] = Atmosphere{
			ClearColor: [3]float32{
				float32(util.Lerp(0.86, 0.08, t)),
				float32(util.Lerp(0.78, 0.09, t)),
				float32(util.Lerp(0.70, 0.14, t)),
			},
			FogColor: [3]float32{
				float32(util.Lerp(0.88, 0.10, t)),
				float32(util.Lerp(0.82, 0.11, t)),
				float32(util.Lerp(0.74, 0.16, t)),
			},
			FogDensity: float32(util.Lerp(0.008, 0.028, t)),
		}
	}
}

// Update animates the content. Objects bob gently outside the hero and
// the gallery cluster spins for the turntable shot; motion amplitude
// follows progress so the opening shot is still.
func (s *ShowcaseScene) Update(elapsed, progress float64) {
	amp := util.Smoothstep(0.05, 0.25, progress)
	active := s.scenes.SceneAt(util.Clamp01(progress))

	for _, obj := range s.objects {
		obj.Mesh.Position.Y = obj.baseY + math.Sin(elapsed*0.6+obj.phase)*0.15*amp

		if obj.Property != nil && obj.Property.Location == "gallery" {
			rate := 0.1
			if active.Label == "gallery" {
				rate = 0.35
			}
			obj.Mesh.Rotation = math.Mod(elapsed*rate*amp, 2*math.Pi)
		}
	}
}

// NearestAtDepth returns the object whose depth (Z) is closest to the
// given coordinate within threshold, or nil when nothing is near enough.
func (s *ShowcaseScene) NearestAtDepth(depth, threshold float64) *SceneObject {
	var best *SceneObject
	bestDist := threshold

	for _, obj := range s.objects {
		d := math.Abs(obj.Mesh.Position.Z - depth)
		if d <= bestDist {
			bestDist = d
			best = obj
		}
	}
	return best
}

// AtmosphereAt blends the per-scene atmospheres at the given progress:
// each scene holds its own atmosphere and eases into the next across the
// last third of its range.
func (s *ShowcaseScene) AtmosphereAt(progress float64) Atmosphere {
	scene := s.scenes.SceneAt(util.Clamp01(progress))
	cur := s.atmos[scene.Index]
	if scene.Index+1 >= len(s.atmos) {
		return cur
	}

	sp := s.scenes.SceneProgress(util.Clamp01(progress), scene)
	blend := util.Smoothstep(0.66, 1.0, sp)
	if blend <= 0 {
		return cur
	}

	next := s.atmos[scene.Index+1]
	mix := func(a, b float32) float32 {
		return a + (b-a)*float32(blend)
	}
	return Atmosphere{
		ClearColor: [3]float32{mix(cur.ClearColor[0], next.ClearColor[0]), mix(cur.ClearColor[1], next.ClearColor[1]), mix(cur.ClearColor[2], next.ClearColor[2])},
		FogColor:   [3]float32{mix(cur.FogColor[0], next.FogColor[0]), mix(cur.FogColor[1], next.FogColor[1]), mix(cur.FogColor[2], next.FogColor[2])},
		FogDensity: mix(cur.FogDensity, next.FogDensity),
	}
}

// Meshes returns every mesh the renderer should draw this frame.
func (s *ShowcaseScene) Meshes() []*Mesh {
	out := make([]*Mesh, 0, len(s.objects)+1)
	out = append(out, s.ground)
	for _, obj := range s.objects {
		out = append(out, obj.Mesh)
	}
	return out
}

// AddMesh attaches an externally loaded mesh (glTF models) to the scene.
func (s *ShowcaseScene) AddMesh(mesh *Mesh, info *PropertyInfo) {
	s.objects = append(s.objects, &SceneObject{
		Mesh:     mesh,
		Property: info,
		baseY:    mesh.Position.Y,
	})
}

// Dispose drops the CPU-side content. GPU buffers belong to the
// renderer's arena and are released in its Dispose walk.
func (s *ShowcaseScene) Dispose() {
	s.objects = nil
	s.ground = nil
}
