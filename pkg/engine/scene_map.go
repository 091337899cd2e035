package engine

import (
	"fmt"
	"math"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/util"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
)

// sceneRangeEpsilon is the tolerance used when validating that scene
// ranges tile [0, 1] without gaps.
const sceneRangeEpsilon = 1e-9

// SceneDefinition describes one narrative scene as a sub-range of global
// progress. Ranges are half-open [Start, End); the final scene also
// includes its upper bound so progress 1.0 resolves to it.
type SceneDefinition struct {
	Index int
	Start float64
	End   float64
	Label string
}

// SceneMap is an ordered, validated table of scene definitions covering
// [0, 1] contiguously. All lookups are pure and safe to call from any
// point in the frame without synchronization.
type SceneMap struct {
	scenes []SceneDefinition
}

// NewSceneMap validates the configured scene ranges and builds the map.
// A malformed table (gaps, overlaps, not covering [0, 1]) is a fatal
// construction-time error; there is no runtime fallback.
func NewSceneMap(cfgs []config.SceneConfig) (*SceneMap, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("scene map requires at least one scene")
	}

	scenes := make([]SceneDefinition, len(cfgs))
	for i, sc := range cfgs {
		if sc.End <= sc.Start {
			return nil, fmt.Errorf("scene %d (%s): empty or inverted range [%v, %v)", i, sc.Label, sc.Start, sc.End)
		}
		scenes[i] = SceneDefinition{
			Index: i,
			Start: sc.Start,
			End:   sc.End,
			Label: sc.Label,
		}
	}

	if math.Abs(scenes[0].Start) > sceneRangeEpsilon {
		return nil, fmt.Errorf("scene map must start at 0, got %v", scenes[0].Start)
	}
	for i := 1; i < len(scenes); i++ {
		if math.Abs(scenes[i].Start-scenes[i-1].End) > sceneRangeEpsilon {
			return nil, fmt.Errorf("scene %d (%s) starts at %v but scene %d ends at %v",
				i, scenes[i].Label, scenes[i].Start, i-1, scenes[i-1].End)
		}
	}
	last := scenes[len(scenes)-1]
	if math.Abs(last.End-1.0) > sceneRangeEpsilon {
		return nil, fmt.Errorf("scene map must end at 1, got %v", last.End)
	}

	return &SceneMap{scenes: scenes}, nil
}

// Len returns the number of scenes
func (m *SceneMap) Len() int {
	return len(m.scenes)
}

// Scenes returns a copy of the scene table
func (m *SceneMap) Scenes() []SceneDefinition {
	out := make([]SceneDefinition, len(m.scenes))
	copy(out, m.scenes)
	return out
}

// Scene returns the definition at index i
func (m *SceneMap) Scene(i int) (SceneDefinition, error) {
	if i < 0 || i >= len(m.scenes) {
		return SceneDefinition{}, fmt.Errorf("scene index %d out of range [0, %d)", i, len(m.scenes))
	}
	return m.scenes[i], nil
}

// SceneAt resolves the scene whose range contains progress. Progress at
// or beyond 1.0 resolves to the final scene; negative progress resolves
// to the first.
func (m *SceneMap) SceneAt(progress float64) SceneDefinition {
	if progress >= 1.0 {
		return m.scenes[len(m.scenes)-1]
	}
	for _, sc := range m.scenes {
		if progress >= sc.Start && progress < sc.End {
			return sc
		}
	}
	// Only reachable for negative progress.
	return m.scenes[0]
}

// SceneProgress computes the normalized position of progress within the
// scene's range, clamped against floating-point overshoot.
func (m *SceneMap) SceneProgress(progress float64, scene SceneDefinition) float64 {
	return util.Clamp01((progress - scene.Start) / (scene.End - scene.Start))
}
