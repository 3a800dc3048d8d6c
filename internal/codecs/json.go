package codecs

import (
	"os"

	"github.com/GriffinCanCode/pplio/internal/fsutil"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/bytedance/sonic"
)

func loadJSON(path string, _ registry.Options) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := sonic.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// dumpJSON encodes obj as JSON. Options: indent, a string or a number of
// spaces (default compact).
func dumpJSON(obj any, path string, opts registry.Options) error {
	indent, err := opts.Indent("indent", "")
	if err != nil {
		return err
	}

	var data []byte
	if indent != "" {
		data, err = sonic.MarshalIndent(obj, "", indent)
	} else {
		data, err = sonic.Marshal(obj)
	}
	if err != nil {
		return err
	}
	return fsutil.WriteBytes(path, data)
}
