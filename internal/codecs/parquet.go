package codecs

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/GriffinCanCode/pplio/internal/fsutil"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/GriffinCanCode/pplio/internal/table"
	"github.com/bytedance/sonic"
	"github.com/parquet-go/parquet-go"
)

// columnOrderKey stores the frame's column order in the file metadata.
// Parquet groups sort their fields by name.
const columnOrderKey = "pplio.columns"

type cellKind int

const (
	kindString cellKind = iota
	kindInt
	kindDouble
	kindBool
)

func loadParquet(path string, _ registry.Options) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	file, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, err
	}

	leaves := file.Schema().Columns()
	values := make([][]any, len(leaves))
	for _, rowGroup := range file.RowGroups() {
		if err := readRowGroup(rowGroup, values); err != nil {
			return nil, err
		}
	}

	byName := make(map[string][]any, len(leaves))
	names := make([]string, len(leaves))
	for i, leaf := range leaves {
		names[i] = leaf[len(leaf)-1]
		byName[names[i]] = values[i]
	}
	if raw, ok := file.Lookup(columnOrderKey); ok {
		var ordered []string
		if err := sonic.UnmarshalString(raw, &ordered); err == nil && len(ordered) == len(names) {
			names = ordered
		}
	}

	frame := &table.Frame{}
	for _, name := range names {
		col, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("parquet: column %q listed in metadata but missing from schema", name)
		}
		if err := frame.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func readRowGroup(rowGroup parquet.RowGroup, values [][]any) error {
	rows := rowGroup.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, 128)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			for _, v := range row {
				values[v.Column()] = append(values[v.Column()], cellFromValue(v))
			}
		}
		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func cellFromValue(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	default:
		return string(v.ByteArray())
	}
}

// dumpParquet writes a frame with one optional leaf per column, typed from
// the column's cells.
func dumpParquet(obj any, path string, _ registry.Options) error {
	frame, ok := obj.(*table.Frame)
	if !ok {
		return fmt.Errorf("parquet: expected *table.Frame, got %T", obj)
	}
	if frame == nil {
		return errNilFrame
	}

	group := parquet.Group{}
	kinds := make(map[string]cellKind, frame.Width())
	for _, col := range frame.Columns {
		kind := columnKind(col.Values)
		kinds[col.Name] = kind
		group[col.Name] = parquet.Optional(kind.node())
	}
	schema := parquet.NewSchema("frame", group)

	// leaf index of every frame column in schema order
	index := make([]int, frame.Width())
	for leaf, leafPath := range schema.Columns() {
		for j, col := range frame.Columns {
			if col.Name == leafPath[len(leafPath)-1] {
				index[j] = leaf
			}
		}
	}

	order, err := sonic.MarshalString(frame.Names())
	if err != nil {
		return err
	}

	rows := make([]parquet.Row, frame.Len())
	for i := range rows {
		row := make(parquet.Row, frame.Width())
		for j, col := range frame.Columns {
			v, err := kinds[col.Name].value(col.Values[i])
			if err != nil {
				return fmt.Errorf("parquet: column %q row %d: %w", col.Name, i, err)
			}
			if v.IsNull() {
				row[index[j]] = v.Level(0, 0, index[j])
			} else {
				row[index[j]] = v.Level(0, 1, index[j])
			}
		}
		rows[i] = row
	}

	return fsutil.WriteFile(path, func(w io.Writer) error {
		writer := parquet.NewWriter(w, schema, parquet.KeyValueMetadata(columnOrderKey, order))
		if _, err := writer.WriteRows(rows); err != nil {
			_ = writer.Close()
			return err
		}
		return writer.Close()
	})
}

// columnKind picks the leaf type for a column from all of its cells. Integer
// and floating point cells together widen to double; any other mix keeps the
// first cell's kind so the offending cell is reported on write.
func columnKind(values []any) cellKind {
	kind, seen := kindString, false
	for _, v := range values {
		k, ok := kindOf(v)
		if !ok {
			continue
		}
		switch {
		case !seen:
			kind, seen = k, true
		case k != kind && k.numeric() && kind.numeric():
			kind = kindDouble
		}
	}
	return kind
}

func kindOf(cell any) (cellKind, bool) {
	switch cell.(type) {
	case nil:
		return kindString, false
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindInt, true
	case float32, float64:
		return kindDouble, true
	case bool:
		return kindBool, true
	default:
		return kindString, true
	}
}

func (k cellKind) numeric() bool {
	return k == kindInt || k == kindDouble
}

func (k cellKind) node() parquet.Node {
	switch k {
	case kindInt:
		return parquet.Leaf(parquet.Int64Type)
	case kindDouble:
		return parquet.Leaf(parquet.DoubleType)
	case kindBool:
		return parquet.Leaf(parquet.BooleanType)
	default:
		return parquet.String()
	}
}

func (k cellKind) value(cell any) (parquet.Value, error) {
	if cell == nil {
		return parquet.NullValue(), nil
	}
	switch k {
	case kindInt:
		n, ok, err := asInt64(cell)
		if err != nil {
			return parquet.Value{}, err
		}
		if ok {
			return parquet.Int64Value(n), nil
		}
	case kindDouble:
		switch f := cell.(type) {
		case float32:
			return parquet.DoubleValue(float64(f)), nil
		case float64:
			return parquet.DoubleValue(f), nil
		}
		switch u := cell.(type) {
		case uint:
			return parquet.DoubleValue(float64(u)), nil
		case uint64:
			return parquet.DoubleValue(float64(u)), nil
		}
		if n, ok, _ := asInt64(cell); ok {
			return parquet.DoubleValue(float64(n)), nil
		}
	case kindBool:
		if b, ok := cell.(bool); ok {
			return parquet.BooleanValue(b), nil
		}
	default:
		return parquet.ByteArrayValue([]byte(table.FormatCell(cell))), nil
	}
	return parquet.Value{}, fmt.Errorf("unexpected %T in %s column", cell, k)
}

// asInt64 converts any Go integer cell. Unsigned values above MaxInt64 are
// an error since parquet int64 leaves are signed.
func asInt64(cell any) (int64, bool, error) {
	switch n := cell.(type) {
	case int:
		return int64(n), true, nil
	case int8:
		return int64(n), true, nil
	case int16:
		return int64(n), true, nil
	case int32:
		return int64(n), true, nil
	case int64:
		return n, true, nil
	case uint8:
		return int64(n), true, nil
	case uint16:
		return int64(n), true, nil
	case uint32:
		return int64(n), true, nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), true, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, false, fmt.Errorf("%d overflows int64", n)
		}
		return int64(n), true, nil
	}
	return 0, false, nil
}

func (k cellKind) String() string {
	switch k {
	case kindInt:
		return "int64"
	case kindDouble:
		return "double"
	case kindBool:
		return "boolean"
	default:
		return "string"
	}
}
