package codecs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/pplio/internal/fsutil"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/GriffinCanCode/pplio/internal/table"
)

// loadCSV parses a CSV file into a frame.
// Options: delimiter (default ","), header (default true).
func loadCSV(path string, opts registry.Options) (any, error) {
	delimiter, err := opts.Rune("delimiter", ',')
	if err != nil {
		return nil, err
	}
	hasHeader, err := opts.Bool("header", true)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return frameFromRecords(records, hasHeader)
}

func frameFromRecords(records [][]string, hasHeader bool) (*table.Frame, error) {
	frame := &table.Frame{}
	if len(records) == 0 {
		return frame, nil
	}

	var headers []string
	startRow := 0
	if hasHeader {
		headers = records[0]
		startRow = 1
	} else {
		// Generate headers: col0, col1, ...
		for i := range records[0] {
			headers = append(headers, fmt.Sprintf("col%d", i))
		}
	}

	for _, h := range headers {
		if err := frame.AddColumn(h, nil); err != nil {
			return nil, err
		}
	}
	for _, record := range records[startRow:] {
		row := make([]any, len(record))
		for j, cell := range record {
			row[j] = table.ParseCell(cell)
		}
		if err := frame.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// dumpCSV writes a frame as CSV without an index column.
// Options: delimiter (default ","), header (default true).
func dumpCSV(obj any, path string, opts registry.Options) error {
	frame, ok := obj.(*table.Frame)
	if !ok {
		return fmt.Errorf("csv: expected *table.Frame, got %T", obj)
	}
	if frame == nil {
		return errNilFrame
	}
	delimiter, err := opts.Rune("delimiter", ',')
	if err != nil {
		return err
	}
	hasHeader, err := opts.Bool("header", true)
	if err != nil {
		return err
	}

	return fsutil.WriteFile(path, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		writer.Comma = delimiter

		if hasHeader {
			if err := writer.Write(frame.Names()); err != nil {
				return err
			}
		}
		record := make([]string, frame.Width())
		for i := 0; i < frame.Len(); i++ {
			for j, v := range frame.Row(i) {
				record[j] = table.FormatCell(v)
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}

		writer.Flush()
		return writer.Error()
	})
}
