package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

type validator interface{ Validate() error }

func loadFile(dir, name string, out validator) error {
	if err := loadYAML(filepath.Join(dir, name), out); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := out.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// LoadAll reads the roster, the relationship seed and the optional creature file from dir.
func LoadAll(dir string) (*StrandsConfig, *RelationshipsConfig, *CreaturesConfig, error) {
	var sc StrandsConfig
	var rc RelationshipsConfig
	var cc CreaturesConfig
	if err := loadFile(dir, "strands.yaml", &sc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadFile(dir, "relationships.yaml", &rc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadFile(dir, "creatures.yaml", &cc); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil, err
		}
	}
	return &sc, &rc, &cc, nil
}
