package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	Description string // One-line description for help output
	build       func() *Scene
}

var builtinScenes = []SceneInfo{
	{ID: "default", Description: "Ground plus diffuse, glass and glossy spheres", build: NewDefaultScene},
	{ID: "glass", Description: "Refraction showcase with nested and tinted dielectrics", build: NewGlassScene},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID })
	return scenes
}

// NewByName creates a built-in scene by ID
func NewByName(id string) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.ID == id {
			return info.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: unknown scene %q", ErrInvalidScene, id)
}
