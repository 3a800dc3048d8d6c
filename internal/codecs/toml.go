package codecs

import (
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/pplio/internal/fsutil"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/pelletier/go-toml/v2"
)

func loadTOML(path string, _ registry.Options) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parsed := map[string]any{}
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// dumpTOML encodes a string-keyed map as TOML. Options: indent, a string or
// a number of spaces (default two spaces).
func dumpTOML(obj any, path string, opts registry.Options) error {
	doc, ok := obj.(map[string]any)
	if !ok {
		return fmt.Errorf("toml: expected map[string]any, got %T", obj)
	}
	indent, err := opts.Indent("indent", "  ")
	if err != nil {
		return err
	}

	return fsutil.WriteFile(path, func(w io.Writer) error {
		return toml.NewEncoder(w).SetIndentSymbol(indent).Encode(doc)
	})
}
