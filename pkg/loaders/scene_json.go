package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// ParseSceneDescription decodes a JSON scene description.
// Unknown fields are rejected so typos in optional parameters surface as errors.
func ParseSceneDescription(reader io.Reader) (scene.Description, error) {
	var desc scene.Description

	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&desc); err != nil {
		return scene.Description{}, fmt.Errorf("failed to parse scene description: %w", err)
	}

	// Trailing content after the top-level object is a malformed file
	if _, err := decoder.Token(); err != io.EOF {
		return scene.Description{}, fmt.Errorf("failed to parse scene description: unexpected data after scene object")
	}

	return desc, nil
}

// LoadSceneDescription reads a JSON scene description from disk
func LoadSceneDescription(filename string) (scene.Description, error) {
	file, err := os.Open(filename)
	if err != nil {
		return scene.Description{}, fmt.Errorf("failed to open scene file %s: %w", filename, err)
	}
	defer file.Close()

	desc, err := ParseSceneDescription(file)
	if err != nil {
		return scene.Description{}, fmt.Errorf("%s: %w", filename, err)
	}
	return desc, nil
}

// LoadScene reads, builds and validates a scene from a JSON file
func LoadScene(filename string) (*scene.Scene, error) {
	desc, err := LoadSceneDescription(filename)
	if err != nil {
		return nil, err
	}

	s, err := scene.Build(desc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}
