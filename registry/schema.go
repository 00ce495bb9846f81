package registry

import (
	"fmt"

	"github.com/erato-dev/erato/go/schema"
)

// Describer is implemented by algorithms that expose runtime tunables.
// The config model is a plain struct whose fields describe the accepted
// settings; external harnesses and hosts use the generated schema to
// validate configuration before constructing an instance.
type Describer interface {
	ConfigModel() any
}

// Schema returns the JSON Schema for the tunables of the first entry whose
// Name matches. The second return is false when no entry matches or the
// algorithm exposes no tunables.
func (r *Registry) Schema(name string) (string, bool) {
	t, ok := r.GetByName(name)
	if !ok {
		return "", false
	}
	d, ok := t.(Describer)
	if !ok {
		return "", false
	}
	data, err := schema.Generate(d.ConfigModel())
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Schemas returns a map of entry name to tunable JSON Schema for every
// registered algorithm that implements Describer.
func (r *Registry) Schemas() (map[string]string, error) {
	out := make(map[string]string)
	for _, t := range r.algorithms {
		d, ok := t.(Describer)
		if !ok {
			continue
		}
		data, err := schema.Generate(d.ConfigModel())
		if err != nil {
			return nil, fmt.Errorf("schema for %s: %w", t.Name(), err)
		}
		out[t.Name()] = string(data)
	}
	return out, nil
}
