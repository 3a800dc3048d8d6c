package codecs

import (
	"os"

	"github.com/GriffinCanCode/pplio/internal/fsutil"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/goccy/go-yaml"
)

func loadYAML(path string, _ registry.Options) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// dumpYAML encodes obj as YAML. Options: indent (spaces, default 2).
func dumpYAML(obj any, path string, opts registry.Options) error {
	indent, err := opts.Int("indent", 2)
	if err != nil {
		return err
	}

	data, err := yaml.MarshalWithOptions(obj, yaml.Indent(indent))
	if err != nil {
		return err
	}
	return fsutil.WriteBytes(path, data)
}
