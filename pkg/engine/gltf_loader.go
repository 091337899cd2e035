package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
)

// ModelLoader decodes glTF showcase models into CPU-side meshes and
// reports every step through the asset gate's LoadingManager, so the
// preloader sees real progress. Decoding is CPU-only and safe off the
// main thread; GPU upload happens lazily in the renderer.
type ModelLoader struct {
	manager *LoadingManager
	log     *logger.Logger
}

// NewModelLoader wires a loader to the gate's loading manager
func NewModelLoader(gate *AssetGate, log *logger.Logger) *ModelLoader {
	return &ModelLoader{manager: gate.Manager(), log: log}
}

// LoadAll decodes every path, reporting progress after each. Individual
// failures are reported and skipped; OnLoad fires regardless so a bad
// file can never wedge the reveal.
func (l *ModelLoader) LoadAll(paths []string) []*Mesh {
	var meshes []*Mesh

	total := len(paths)
	for i, path := range paths {
		mesh, err := l.loadOne(path)
		if err != nil {
			l.manager.OnError(path, err)
		} else {
			meshes = append(meshes, mesh)
		}
		l.manager.OnProgress(path, i+1, total)
	}

	l.manager.OnLoad()
	return meshes
}

// loadOne reads the first mesh primitive of a .glb/.gltf file as a flat
// triangle list.
func (l *ModelLoader) loadOne(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gltf %q: %v", path, err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf %q contains no mesh primitives", path)
	}

	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("gltf %q primitive has no POSITION attribute", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions from %q: %v", path, err)
	}

	var normals [][3]float32
	if nIdx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[nIdx], nil)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read indices from %q: %v", path, err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	verts := make([]float32, 0, len(indices)*6)
	for _, idx := range indices {
		p := positions[idx]
		n := [3]float32{0, 1, 0}
		if int(idx) < len(normals) {
			n = normals[idx]
		}
		verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2])
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	l.log.Debugf("loaded model %s (%d vertices)", name, len(verts)/6)

	return &Mesh{
		Name:     name,
		Vertices: verts,
		Color:    [3]float32{0.75, 0.72, 0.68},
		Scale:    1,
	}, nil
}
