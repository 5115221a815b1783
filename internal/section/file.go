package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a named section instance read from a file, e.g.
//
//	name: W-beam
//	shape: I-beam
//	dimensions: {b: 200, h: 400, t: 10, e: 8}
type Definition struct {
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Shape       Shape              `json:"shape" yaml:"shape"`
	Dimensions  map[string]float64 `json:"dimensions" yaml:"dimensions"`
}

// Instance converts the definition, rejecting unknown parameter names and
// invalid dimensions
func (d *Definition) Instance() (Instance, error) {
	if !d.Shape.Valid() {
		return Instance{}, fmt.Errorf("section %q: shape is required", d.Name)
	}
	dims := make(Dimensions, len(d.Dimensions))
	for k, v := range d.Dimensions {
		p, err := ParseParam(k)
		if err != nil {
			return Instance{}, fmt.Errorf("section %q: %w", d.Name, err)
		}
		dims[p] = v
	}
	return NewInstance(d.Shape, dims)
}

// LoadFromFile loads a section definition from a JSON or YAML file.
// The format follows the file extension; anything other than .json is read as YAML.
func LoadFromFile(path string) (*Definition, Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Instance{}, err
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &def)
	default:
		err = yaml.Unmarshal(data, &def)
	}
	if err != nil {
		return nil, Instance{}, fmt.Errorf("parse %s: %w", path, err)
	}

	inst, err := def.Instance()
	if err != nil {
		return nil, Instance{}, err
	}
	return &def, inst, nil
}
