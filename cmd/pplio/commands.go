package main

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/GriffinCanCode/pplio/internal/iomanager"
	"github.com/GriffinCanCode/pplio/internal/registry"
	"github.com/GriffinCanCode/pplio/internal/table"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List registered suffixes, aliases and object types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.manager.Registry()

			byCanonical := make(map[string][]string)
			for alias, canonical := range reg.Aliases() {
				byCanonical[canonical] = append(byCanonical[canonical], alias)
			}

			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SUFFIX\tALIASES\tLOADS\tDUMPS")
			for _, suffix := range reg.Suffixes() {
				aliases := byCanonical[suffix]
				slices.Sort(aliases)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					suffix,
					orDash(strings.Join(aliases, ",")),
					orDash(typeNames(reg.LoaderTypes(suffix))),
					orDash(typeNames(reg.DumperTypes(suffix))),
				)
			}
			return w.Flush()
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Load SRC and dump it to DST, picking formats by suffix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := a.manager.Load(a.key, args[0])
			if err != nil {
				return err
			}
			outKey := a.outKey
			if !cmd.Flags().Changed("out-key") {
				outKey = a.key
			}
			return a.manager.Dump(obj, outKey, args[1], iomanager.WithFormatOptions(a.formatOptions()))
		},
	}
	cmd.Flags().StringVar(&a.outKey, "out-key", "", "directory key for DST (defaults to --key)")
	return cmd
}

func (a *app) catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat PATH",
		Short: "Load PATH and print it as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := a.manager.Load(a.key, args[0], iomanager.WithFormatOptions(a.formatOptions()))
			if err != nil {
				return err
			}
			return a.printYAML(obj)
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe PATH",
		Short: "Print summary statistics for the numeric columns of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := iomanager.LoadAs[*table.Frame](a.manager, a.key, args[0],
				iomanager.WithFormatOptions(a.formatOptions()))
			if err != nil {
				return err
			}
			return a.printYAML(frame.Describe())
		},
	}
}

func (a *app) lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [PATTERN]",
		Short: "List loadable files under the --key directory, or those matching PATTERN",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				paths []string
				err   error
			)
			if len(args) == 1 {
				paths, err = a.manager.Glob(a.key, args[0])
			} else {
				paths, err = a.manager.Files(a.key)
			}
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(a.out, p)
			}
			return nil
		},
	}
}

func (a *app) printYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}

func typeNames(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		if t == registry.AnyType {
			names[i] = "any"
		} else {
			names[i] = t.String()
		}
	}
	return strings.Join(names, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
