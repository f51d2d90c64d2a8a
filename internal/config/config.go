package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sigs.k8s.io/yaml"
)

// DefaultFile is the config file looked up when none is given explicitly.
const DefaultFile = ".imagenames.yaml"

var readFile = os.ReadFile

// File mirrors the optional YAML config file. Zero values mean "not set".
type File struct {
	Suffix        string `json:"suffix,omitempty"`
	EnumName      string `json:"enumName,omitempty"`
	ImportModule  string `json:"importModule,omitempty"`
	Depth         *uint  `json:"depth,omitempty"`
	OverridesFile string `json:"overridesFile,omitempty"`
}

// Load reads path. A missing DefaultFile yields an empty File; any other
// missing path is an error.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	data, err := readFile(path)
	if err != nil {
		if path == DefaultFile && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("could not open config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config data. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	cfg := &File{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	return cfg, nil
}
