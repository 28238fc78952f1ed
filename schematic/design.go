package schematic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ercheck/core"
)

// maxDesignFileSize bounds design documents read from disk.
const maxDesignFileSize = 50 * 1024 * 1024 // 50MB

// Design is a loaded schematic: the flat set of parts and nets the rule
// checker walks.
type Design struct {
	Name  string
	Parts []*Part
	Nets  []*Net
}

// Objects returns every design entity as a base object, parts before
// nets, each part's pins directly after it.
func (d *Design) Objects() []*core.Object {
	var out []*core.Object
	for _, part := range d.Parts {
		out = append(out, part.Object)
		for _, pin := range part.Pins() {
			out = append(out, pin.Object)
		}
	}
	for _, net := range d.Nets {
		out = append(out, net.Object)
	}
	return out
}

type pinDoc struct {
	Number int    `yaml:"number"`
	Name   string `yaml:"name"`
}

type partDoc struct {
	Ref     string            `yaml:"ref"`
	Name    string            `yaml:"name"`
	Value   string            `yaml:"value"`
	Aliases []string          `yaml:"aliases"`
	Notes   []string          `yaml:"notes"`
	Fields  map[string]string `yaml:"fields"`
	Pins    []pinDoc          `yaml:"pins"`
}

type netDoc struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Drivers int      `yaml:"drivers"`
	Loads   int      `yaml:"loads"`
}

type designDoc struct {
	Name  string    `yaml:"name"`
	Parts []partDoc `yaml:"parts"`
	Nets  []netDoc  `yaml:"nets"`
}

// LoadDesign reads a YAML design document into domain objects.
func LoadDesign(path string) (*Design, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat design file: %w", err)
	}
	if info.Size() > maxDesignFileSize {
		return nil, fmt.Errorf("design file exceeds maximum size of %d bytes", maxDesignFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design file: %w", err)
	}

	var doc designDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse design file %s: %w", path, err)
	}

	design := &Design{Name: doc.Name}
	for _, pd := range doc.Parts {
		if pd.Ref == "" {
			return nil, fmt.Errorf("part without ref in design file %s", path)
		}
		part := NewPart(pd.Ref, pd.Name)
		if pd.Value != "" {
			part.SetValue(pd.Value)
		}
		part.SetAliases(pd.Aliases...)
		part.SetNotes(pd.Notes...)
		for key, value := range pd.Fields {
			if err := part.Fields().Set(key, value); err != nil {
				return nil, fmt.Errorf("part %s: %w", pd.Ref, err)
			}
		}
		for _, pin := range pd.Pins {
			part.AddPin(NewPin(pin.Number, pin.Name))
		}
		design.Parts = append(design.Parts, part)
	}
	for _, nd := range doc.Nets {
		if nd.Name == "" {
			return nil, fmt.Errorf("net without name in design file %s", path)
		}
		net := NewNet(nd.Name)
		net.SetAliases(nd.Aliases...)
		net.SetDrivers(nd.Drivers)
		net.SetLoads(nd.Loads)
		design.Nets = append(design.Nets, net)
	}
	return design, nil
}
