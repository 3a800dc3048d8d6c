package codecs

import (
	"os"
	"reflect"

	"github.com/GriffinCanCode/pplio/internal/fsutil"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/GriffinCanCode/pplio/internal/table"
	"github.com/fxamacker/cbor/v2"
)

// frameTag marks an encoded table.Frame so it decodes back into a frame
// rather than a generic map.
const frameTag = 52001

var (
	objectEncMode cbor.EncMode
	objectDecMode cbor.DecMode
)

func init() {
	tags := cbor.NewTagSet()
	err := tags.Add(
		cbor.TagOptions{EncTag: cbor.EncTagRequired, DecTag: cbor.DecTagRequired},
		reflect.TypeOf(table.Frame{}),
		frameTag,
	)
	if err != nil {
		panic("codecs: CBOR tag registration failed: " + err.Error())
	}

	objectEncMode, err = cbor.CoreDetEncOptions().EncModeWithTags(tags)
	if err != nil {
		panic("codecs: CBOR encoder initialization failed: " + err.Error())
	}

	objectDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecModeWithTags(tags)
	if err != nil {
		panic("codecs: CBOR decoder initialization failed: " + err.Error())
	}
}

// loadObject decodes a CBOR object file. Frames come back as *table.Frame,
// other values as generic maps, slices and scalars.
func loadObject(path string, _ registry.Options) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var v any
	if err := objectDecMode.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if frame, ok := v.(table.Frame); ok {
		return &frame, nil
	}
	return v, nil
}

// dumpObject encodes obj with CBOR core deterministic encoding. The value
// must be CBOR-encodable.
func dumpObject(obj any, path string, _ registry.Options) error {
	data, err := objectEncMode.Marshal(obj)
	if err != nil {
		return err
	}
	return fsutil.WriteBytes(path, data)
}
