// Package iomanager reads and writes data files by directory key.
//
// A Manager pairs named directories with a codec registry so that callers
// can load and dump data with a single call. The file format is inferred
// from the path's extension, an explicit suffix override, or, for loads of
// extensionless files, the file content.
//
// Example Usage:
//
//	mgr, err := iomanager.New(nil, iomanager.WithDirs(map[string]string{
//	    "raw":    "/data/raw",
//	    "output": "/data/output",
//	}))
//	err = mgr.Dump(frame, "output", "results.csv")
//	obj, err := mgr.Load("output", "results.csv")
//	frame, err := iomanager.LoadAs[*table.Frame](mgr, "output", "results.csv")
package iomanager
