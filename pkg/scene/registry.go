package scene

import (
	"fmt"
	"sort"
)

// BuildOptions are the caller-controlled inputs of a built-in scene
type BuildOptions struct {
	Width       int
	Height      int
	OBJPath     string // mesh file for scenes that load geometry from disk
	TexturePath string // optional image replacing the procedural floor texture
}

// Builder assembles an unbuilt scene
type Builder func(opts BuildOptions) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Integrator  string `json:"integrator"` // "whitted" or "path"
	NeedsOBJ    bool   `json:"needsObj"`
}

type registration struct {
	info    SceneInfo
	builder Builder
}

var registry = map[string]registration{}

func register(info SceneInfo, builder Builder) {
	if _, exists := registry[info.ID]; exists {
		panic(fmt.Sprintf("scene %q registered twice", info.ID))
	}
	registry[info.ID] = registration{info: info, builder: builder}
}

func init() {
	register(SceneInfo{
		ID:          "whitted",
		Name:        "Whitted",
		Description: "Checkerboard floor with diffuse, mirror and glass boxes under two point lights",
		Integrator:  "whitted",
	}, NewWhittedScene)
	register(SceneInfo{
		ID:          "cornell",
		Name:        "Cornell Box",
		Description: "Classic Cornell box lit by a ceiling area light",
		Integrator:  "path",
	}, NewCornellScene)
	register(SceneInfo{
		ID:          "bunny",
		Name:        "Bunny",
		Description: "Triangle mesh loaded from an OBJ file under two point lights",
		Integrator:  "whitted",
		NeedsOBJ:    true,
	}, NewBunnyScene)
}

// Lookup returns the registered scene with the given id
func Lookup(id string) (SceneInfo, Builder, error) {
	reg, ok := registry[id]
	if !ok {
		return SceneInfo{}, nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return reg.info, reg.builder, nil
}

// List returns every registered scene sorted by id
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, reg := range registry {
		scenes = append(scenes, reg.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Load builds the scene registered under id and finalizes its
// acceleration structures
func Load(id string, opts BuildOptions) (*Scene, error) {
	_, builder, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	s, err := builder(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
	}
	s.Build()
	logger.Infof("loaded scene %q: %d primitives, %d triangles, %d point lights",
		id, len(s.Primitives), s.TriangleCount(), len(s.Lights))
	return s, nil
}

func imageSize(opts BuildOptions, width, height int) (int, int) {
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	return width, height
}
